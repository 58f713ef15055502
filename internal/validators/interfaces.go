// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decrypted request payloads against embedded JSON
// schemas before they reach the services.
package validators

import "context"

// Validator validates a decoded request value.
type Validator interface {
	Validate(ctx context.Context, v any) error
}
