// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
)

// Storages bundles every persistence dependency of the server services.
type Storages struct {
	DB *DB

	Transactor  Transactor
	Accounts    AccountRepository
	Requests    IssuerRequestRepository
	Credentials CredentialRepository
	Files       FileStore
}

// NewStorages connects to the ledger database, applies migrations and
// opens the document store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	files, err := NewFileStore(ctx, cfg.Files, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		DB:          db,
		Transactor:  db,
		Accounts:    NewAccountRepository(db, log),
		Requests:    NewIssuerRequestRepository(db, log),
		Credentials: NewCredentialRepository(db, log),
		Files:       files,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
