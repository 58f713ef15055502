// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
)

type badgerKV struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewBadgerKV opens a Badger store in dir. An empty dir keeps the store in
// memory.
func NewBadgerKV(dir string, log *logger.Logger) (KV, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		log.Err(err).Str("func", "NewBadgerKV").Msg("error opening badger vault")
		return nil, fmt.Errorf("error opening badger vault: %w", err)
	}

	return &badgerKV{db: db, logger: log}, nil
}

func (b *badgerKV) Get(_ context.Context, key string) (string, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		b.logger.Err(err).Str("func", "badgerKV.Get").Msg("error reading key")
		return "", fmt.Errorf("read key: %w", err)
	}
	return string(value), nil
}

func (b *badgerKV) Set(_ context.Context, key, value string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		b.logger.Err(err).Str("func", "badgerKV.Set").Msg("error writing key")
		return fmt.Errorf("write key: %w", err)
	}
	return nil
}

func (b *badgerKV) Delete(_ context.Context, key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		b.logger.Err(err).Str("func", "badgerKV.Delete").Msg("error deleting key")
		return fmt.Errorf("delete key: %w", err)
	}
	return nil
}

func (b *badgerKV) Close() error {
	return b.db.Close()
}
