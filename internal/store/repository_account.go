// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository] over the "accounts" table.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (models.Account, error) {
	var (
		a    models.Account
		role string
	)
	if err := row.Scan(&a.Address, &role, &a.Name, &a.CreatedAt); err != nil {
		return models.Account{}, err
	}
	a.Role = models.Role(role)
	return a, nil
}

// CreateAccount inserts the account and returns the stored row.
// A duplicate address yields [ErrAccountExists].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(account)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAccount(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrAccountExists
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindAccount looks an account up by wallet address, ignoring hex case.
func (r *accountRepository) FindAccount(ctx context.Context, address string) (models.Account, error) {
	query, args, err := buildSelectAccountQuery(address)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*accountRepository.FindAccount", query, args)
}

// FindAccountByName returns the first account of role registered under name.
func (r *accountRepository) FindAccountByName(ctx context.Context, role models.Role, name string) (models.Account, error) {
	query, args, err := buildSelectAccountByNameQuery(role, name)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "*accountRepository.FindAccountByName", query, args)
}

func (r *accountRepository) findOne(ctx context.Context, fn, query string, args []any) (models.Account, error) {
	var found models.Account
	err := r.db.withRetry(ctx, func() (err error) {
		found, err = scanAccount(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
		return err
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Account{}, ErrAccountNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error selecting account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
