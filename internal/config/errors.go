// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration view is incomplete.
var (
	// ErrInvalidAppConfigs indicates missing or malformed application
	// secrets (envelope key, token sign key, gov address).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs indicates an unusable ledger or file store
	// configuration.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	ErrInvalidVaultConfigs  = errors.New("invalid vault configuration")
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
