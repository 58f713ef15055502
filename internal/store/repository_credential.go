// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// credentialRepository is the ledger of issued credentials, keyed by the
// content hash of the credential document.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

func scanCredential(row scanner) (models.Credential, error) {
	var (
		c         models.Credential
		revokedAt sql.NullTime
	)
	if err := row.Scan(&c.Hash, &c.Holder, &c.Issuer, &c.CID, &c.Revoked, &c.IssuedAt, &revokedAt); err != nil {
		return models.Credential{}, err
	}
	if revokedAt.Valid {
		t := revokedAt.Time
		c.RevokedAt = &t
	}
	return c, nil
}

// CreateCredential records a newly issued credential. A hash that is
// already on the ledger yields [ErrCredentialExists].
func (r *credentialRepository) CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error) {
	query, args, err := buildInsertCredentialQuery(credential)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanCredential(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error inserting credential")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Credential{}, ErrCredentialExists
		default:
			return models.Credential{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindCredential returns the credential recorded under hash.
func (r *credentialRepository) FindCredential(ctx context.Context, hash string) (models.Credential, error) {
	query, args, err := buildSelectCredentialQuery(hash)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Credential
	err = r.db.withRetry(ctx, func() (err error) {
		found, err = scanCredential(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
		return err
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Credential{}, ErrCredentialNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.FindCredential").Msg("error selecting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListByHolder returns the credentials held by a student, newest first.
func (r *credentialRepository) ListByHolder(ctx context.Context, holder string) ([]models.Credential, error) {
	return r.listBy(ctx, "holder", holder)
}

// ListByIssuer returns the credentials issued by a university, newest first.
func (r *credentialRepository) ListByIssuer(ctx context.Context, issuer string) ([]models.Credential, error) {
	return r.listBy(ctx, "issuer", issuer)
}

func (r *credentialRepository) listBy(ctx context.Context, column, address string) ([]models.Credential, error) {
	query, args, err := buildSelectCredentialsByQuery(column, address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credentials []models.Credential
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		credentials = make([]models.Credential, 0)
		for rows.Next() {
			c, err := scanCredential(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			credentials = append(credentials, c)
		}
		return rows.Err()
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.listBy").Str("by", column).Msg("error selecting credentials")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return credentials, nil
}

// RevokeCredential marks the active credential hash of issuer as revoked.
// If no active credential of that issuer matches, [ErrCredentialNotFound] is
// returned; callers distinguish "not yours" and "already revoked" with
// [credentialRepository.FindCredential] beforehand.
func (r *credentialRepository) RevokeCredential(ctx context.Context, hash, issuer string) (models.Credential, error) {
	query, args, err := buildRevokeCredentialQuery(hash, issuer, time.Now().UTC())
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	revoked, err := scanCredential(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Credential{}, ErrCredentialNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*credentialRepository.RevokeCredential").Msg("error revoking credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return revoked, nil
}

// Count returns the number of active and revoked credentials.
func (r *credentialRepository) Count(ctx context.Context) (active, revoked int64, err error) {
	query, args, err := buildCountCredentialsQuery()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		active, revoked = 0, 0
		for rows.Next() {
			var (
				isRevoked bool
				n         int64
			)
			if err = rows.Scan(&isRevoked, &n); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			if isRevoked {
				revoked = n
			} else {
				active = n
			}
		}
		return rows.Err()
	})
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return active, revoked, nil
}
