// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import "errors"

var (
	// ErrDecrypt covers every unwrap failure: wrong key, corrupt content,
	// missing content or a plaintext that is not UTF-8 JSON.
	ErrDecrypt = errors.New("invalid encrypted data")

	ErrEmptyKey    = errors.New("envelope key is empty")
	ErrUnknownMode = errors.New("unknown envelope mode")
)
