// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountExists is returned when an account with the same wallet
	// address is already registered.
	ErrAccountExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrRequestExists is returned when a university with the same name has
	// already asked for issuer rights.
	ErrRequestExists = errors.New("issuer request already exists")

	// ErrRequestNotFound is returned when no issuer request matches.
	ErrRequestNotFound = errors.New("issuer request was not found")

	// ErrCredentialExists is returned when a credential with the same
	// content hash is already on the ledger.
	ErrCredentialExists = errors.New("credential already exists")

	// ErrCredentialNotFound is returned when no credential matches the hash,
	// or when a revoke does not match an active credential of the issuer.
	ErrCredentialNotFound = errors.New("credential was not found")

	// ErrFileNotFound is returned by [FileStore.Get] for an unknown CID.
	ErrFileNotFound = errors.New("file was not found")

	// ErrInvalidCID is returned when a CID string cannot be parsed.
	ErrInvalidCID = errors.New("invalid content id")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
