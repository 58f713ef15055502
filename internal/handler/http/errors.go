// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-cred-keeper/internal/app"
)

// Sentinel errors returned to callers before a request reaches a handler.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not a
	// bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrForbidden is returned when the token role may not use the route.
	ErrForbidden = errors.New("access denied for this role")

	// ErrInvalidEncryptedData is the only message a client sees when its
	// envelope cannot be opened.
	ErrInvalidEncryptedData = errors.New(app.MsgInvalidEncryptedData)

	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
