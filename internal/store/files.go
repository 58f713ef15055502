// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
)

const (
	FilesBackendLocal = "local"
	FilesBackendS3    = "s3"
)

// ComputeCID returns the CIDv1 (raw codec, sha2-256) of data in its default
// base32 string form.
func ComputeCID(data []byte) (string, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("error hashing file: %w", err)
	}
	return cid.NewCidV1(cid.Raw, mh).String(), nil
}

// parseCID validates a CID string and returns its canonical form, which is
// also the storage key.
func parseCID(s string) (string, error) {
	c, err := cid.Decode(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCID, err)
	}
	return c.String(), nil
}

// NewFileStore builds the document store selected by cfg.Backend.
func NewFileStore(ctx context.Context, cfg config.Files, log *logger.Logger) (FileStore, error) {
	switch cfg.Backend {
	case FilesBackendLocal, "":
		return NewLocalFileStore(cfg.Dir, log)
	case FilesBackendS3:
		return NewS3FileStore(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown files backend %q", cfg.Backend)
	}
}

// localFileStore keeps one file per CID in a flat directory.
type localFileStore struct {
	dir    string
	logger *logger.Logger
}

func NewLocalFileStore(dir string, log *logger.Logger) (FileStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating files directory: %w", err)
	}
	log.Debug().Str("dir", dir).Msg("creating local file store")
	return &localFileStore{dir: dir, logger: log}, nil
}

// Put writes data under its CID. Storing the same content twice is a no-op.
func (s *localFileStore) Put(ctx context.Context, data []byte) (string, error) {
	id, err := ComputeCID(data)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, id)
	if _, err = os.Stat(path); err == nil {
		return id, nil
	}

	tmp, err := os.CreateTemp(s.dir, id+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("error creating file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("error writing file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("error writing file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("error storing file: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("cid", id).Int("size", len(data)).Msg("file stored")
	return id, nil
}

func (s *localFileStore) Get(ctx context.Context, id string) ([]byte, error) {
	key, err := parseCID(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}
