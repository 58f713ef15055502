// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set of an access token. The subject holds the
// wallet address; Role scopes the portal the token was issued for.
type Claims struct {
	jwt.RegisteredClaims

	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token ready to be
// transmitted in the Authorization header or stored in the client session.
type Token struct {
	*jwt.Token `json:"-"`

	Claims

	SignedString string `json:"-"`
}

// GetWalletAddress returns the wallet address from the "sub" claim.
func (t *Token) GetWalletAddress() (string, error) {
	address, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting wallet address from token: %w", err)
	}
	if address == "" {
		return "", errors.New("token subject is empty")
	}

	return address, nil
}

// GetRole returns the role claim, failing on unknown values.
func (t *Token) GetRole() (Role, error) {
	if !t.Role.IsValid() {
		return "", fmt.Errorf("token carries unknown role %q", t.Role)
	}
	return t.Role, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
