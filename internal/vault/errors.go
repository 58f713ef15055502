// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record exists for a username.
	ErrNotFound = errors.New("user not found")

	// ErrWalletMissing is returned when the name slot exists but the wallet
	// slot does not. It matches [ErrNotFound].
	ErrWalletMissing = fmt.Errorf("wallet data missing: %w", ErrNotFound)

	// ErrWrongPassword is returned when the wallet record does not open
	// under the given password.
	ErrWrongPassword = errors.New("incorrect password")

	// ErrSaveFailed is returned when a record could not be persisted.
	ErrSaveFailed = errors.New("failed to save wallet locally")

	// ErrKeyNotFound is returned by [KV] implementations for absent keys.
	ErrKeyNotFound = errors.New("key not found")

	ErrUnknownBackend = errors.New("unknown vault backend")
)

// Key file errors.
var (
	ErrKeyFileDecrypt = errors.New("decryption failed, invalid password or corrupt file")
	ErrKeyFileAddress = errors.New("invalid admin file, address missing")
)
