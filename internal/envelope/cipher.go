// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/models"
)

//go:generate mockgen -source=cipher.go -destination=../mock/envelope_mock.go -package=mock

// Cipher turns payloads into envelopes and back.
type Cipher interface {
	// Wrap serializes v to JSON and encrypts it. Output differs on every
	// call because each message gets a fresh nonce or salt.
	Wrap(v any) (models.Envelope, error)

	// Unwrap decrypts env and decodes the JSON payload into v.
	Unwrap(env models.Envelope, v any) error

	// WrapBytes encrypts an already serialized JSON payload.
	WrapBytes(payload []byte) (models.Envelope, error)

	// UnwrapBytes returns the raw JSON payload of env.
	UnwrapBytes(env models.Envelope) ([]byte, error)
}

const (
	ModeGCM    = "gcm"
	ModeLegacy = "legacy"

	subKeyInfo = "envelope-v1"
)

// New builds the [Cipher] for mode keyed by secret.
func New(mode, secret string, kc crypto.KeyChain) (Cipher, error) {
	if secret == "" {
		return nil, ErrEmptyKey
	}

	switch mode {
	case ModeGCM, "":
		key, err := kc.DeriveSubKey([]byte(secret), subKeyInfo)
		if err != nil {
			return nil, fmt.Errorf("derive envelope key: %w", err)
		}
		return &gcmCipher{kc: kc, key: key}, nil
	case ModeLegacy:
		return &passphraseCipher{passphrase: secret}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

type gcmCipher struct {
	kc  crypto.KeyChain
	key []byte
}

func (c *gcmCipher) Wrap(v any) (models.Envelope, error) {
	return wrap(c, v)
}

func (c *gcmCipher) Unwrap(env models.Envelope, v any) error {
	return unwrap(c, env, v)
}

func (c *gcmCipher) WrapBytes(payload []byte) (models.Envelope, error) {
	blob, err := c.kc.Seal(c.key, payload)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("seal envelope: %w", err)
	}
	return models.Envelope{Content: base64.StdEncoding.EncodeToString(blob)}, nil
}

func (c *gcmCipher) UnwrapBytes(env models.Envelope) ([]byte, error) {
	if env.Content == "" {
		return nil, ErrDecrypt
	}
	blob, err := base64.StdEncoding.DecodeString(env.Content)
	if err != nil {
		return nil, ErrDecrypt
	}
	payload, err := c.kc.Open(c.key, blob)
	if err != nil {
		return nil, ErrDecrypt
	}
	return checkPayload(payload)
}

type passphraseCipher struct {
	passphrase string
}

func (c *passphraseCipher) Wrap(v any) (models.Envelope, error) {
	return wrap(c, v)
}

func (c *passphraseCipher) Unwrap(env models.Envelope, v any) error {
	return unwrap(c, env, v)
}

func (c *passphraseCipher) WrapBytes(payload []byte) (models.Envelope, error) {
	content, err := crypto.EncryptPassphrase(payload, c.passphrase)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("encrypt envelope: %w", err)
	}
	return models.Envelope{Content: content}, nil
}

func (c *passphraseCipher) UnwrapBytes(env models.Envelope) ([]byte, error) {
	if env.Content == "" {
		return nil, ErrDecrypt
	}
	payload, err := crypto.DecryptPassphrase(env.Content, c.passphrase)
	if err != nil {
		return nil, ErrDecrypt
	}
	// no tag in this mode, so garbage plaintext is the only signal of a wrong key
	return checkPayload(payload)
}

func wrap(c Cipher, v any) (models.Envelope, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal payload: %w", err)
	}
	return c.WrapBytes(payload)
}

func unwrap(c Cipher, env models.Envelope, v any) error {
	payload, err := c.UnwrapBytes(env)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

func checkPayload(payload []byte) ([]byte, error) {
	if len(payload) == 0 || !utf8.Valid(payload) || !json.Valid(payload) {
		return nil, ErrDecrypt
	}
	return payload, nil
}
