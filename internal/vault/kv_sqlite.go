// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
)

const createKVTable = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

type sqliteKV struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteKV opens (creating if needed) the SQLite file at dsn and returns
// a [KV] backed by its kv table.
func NewSQLiteKV(ctx context.Context, dsn string, log *logger.Logger) (KV, error) {
	if err := createDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewSQLiteKV").Msg("error creating vault file")
		return nil, fmt.Errorf("error creating vault file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteKV").Msg("error opening vault database")
		return nil, fmt.Errorf("error opening vault database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteKV").Msg("error connecting vault database (ping)")
		conn.Close()
		return nil, err
	}

	kv, err := newSQLiteKV(ctx, conn, log)
	if err != nil {
		conn.Close()
		return nil, err
	}

	log.Debug().Str("func", "NewSQLiteKV").Msg("vault database ready")
	return kv, nil
}

func newSQLiteKV(ctx context.Context, conn *sql.DB, log *logger.Logger) (*sqliteKV, error) {
	if _, err := conn.ExecContext(ctx, createKVTable); err != nil {
		log.Err(err).Str("func", "newSQLiteKV").Msg("error creating kv table")
		return nil, fmt.Errorf("error creating kv table: %w", err)
	}
	return &sqliteKV{db: conn, logger: log}, nil
}

func (s *sqliteKV) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select("value").From("kv").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", fmt.Errorf("build get query: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteKV.Get").Msg("error reading key")
		return "", fmt.Errorf("read key: %w", err)
	}
	return value, nil
}

func (s *sqliteKV) Set(ctx context.Context, key, value string) error {
	query, args, err := sq.Insert("kv").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteKV.Set").Msg("error writing key")
		return fmt.Errorf("write key: %w", err)
	}
	return nil
}

func (s *sqliteKV) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("kv").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteKV.Delete").Msg("error deleting key")
		return fmt.Errorf("delete key: %w", err)
	}
	return nil
}

func (s *sqliteKV) Close() error {
	return s.db.Close()
}

func createDBFileIfNotExists(dsn string) error {
	if dsn == "" || dsn == ":memory:" {
		return nil
	}
	if _, err := os.Stat(dsn); os.IsNotExist(err) {
		if dir := filepath.Dir(dsn); dir != "." {
			if err = os.MkdirAll(dir, 0o700); err != nil {
				return err
			}
		}
		f, err := os.OpenFile(dsn, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return err
		}
		f.Close()
	}
	return nil
}
