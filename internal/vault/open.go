// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
)

const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// OpenKV opens the [KV] backend by name. location is the SQLite file or the
// Badger directory.
func OpenKV(ctx context.Context, backend, location string, log *logger.Logger) (KV, error) {
	switch backend {
	case BackendSQLite, "":
		return NewSQLiteKV(ctx, location, log)
	case BackendBadger:
		return NewBadgerKV(location, log)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
