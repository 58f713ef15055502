// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the single-field wrapper carried by every API body.
// Content holds the ciphertext of a JSON-serialized payload.
type Envelope struct {
	Content string `json:"content"`
}
