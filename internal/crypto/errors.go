// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrOpen               = errors.New("message authentication failed")
	ErrNotSalted          = errors.New("ciphertext is not in salted passphrase format")
	ErrBadPadding         = errors.New("invalid block padding")
)
