// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-keeper/models"
)

// Session holds the logged-in state in the jwt, role and wallet slots.
// These slots are not encrypted.
type Session struct {
	kv KV
}

func NewSession(kv KV) *Session {
	return &Session{kv: kv}
}

// Store records a successful login.
func (s *Session) Store(ctx context.Context, token string, role models.Role, wallet string) error {
	for key, value := range map[string]string{
		keyJWT:    token,
		keyRole:   string(role),
		keyWallet: wallet,
	} {
		if err := s.kv.Set(ctx, key, value); err != nil {
			return fmt.Errorf("store session %s: %w", key, err)
		}
	}
	return nil
}

// Token returns the bearer token, or "" when nobody is logged in.
func (s *Session) Token(ctx context.Context) (string, error) {
	return s.get(ctx, keyJWT)
}

func (s *Session) Role(ctx context.Context) (models.Role, error) {
	role, err := s.get(ctx, keyRole)
	return models.Role(role), err
}

func (s *Session) Wallet(ctx context.Context) (string, error) {
	return s.get(ctx, keyWallet)
}

// Clear removes every session slot.
func (s *Session) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range []string{keyJWT, keyRole, keyWallet} {
		if err := s.kv.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Session) get(ctx context.Context, key string) (string, error) {
	v, err := s.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	return v, err
}
