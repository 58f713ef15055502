// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

const (
	saltSize = 16
	keySize  = 32
)

// Params tunes Argon2id.
type Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// DefaultParams are the OWASP (2024) recommended Argon2id settings:
// 1 iteration, 64 MiB, 4 lanes.
var DefaultParams = Params{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
}

type keyChain struct {
	params Params
}

// NewKeyChain constructs a [KeyChain] using [DefaultParams].
func NewKeyChain() KeyChain {
	return NewKeyChainWithParams(DefaultParams)
}

// NewKeyChainWithParams constructs a [KeyChain] with custom Argon2id cost.
// Zero fields fall back to [DefaultParams].
func NewKeyChainWithParams(p Params) KeyChain {
	if p.Time == 0 {
		p.Time = DefaultParams.Time
	}
	if p.Memory == 0 {
		p.Memory = DefaultParams.Memory
	}
	if p.Threads == 0 {
		p.Threads = DefaultParams.Threads
	}
	return &keyChain{params: p}
}

func (k *keyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

func (k *keyChain) DeriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, k.params.Time, k.params.Memory, k.params.Threads, keySize)
}

func (k *keyChain) DeriveSubKey(secret []byte, info string) ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("derive sub key: %w", err)
	}
	return key, nil
}

func (k *keyChain) Seal(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (k *keyChain) Open(key, blob []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize+gcm.Overhead() {
		return nil, ErrCiphertextTooShort
	}

	plaintext, err := gcm.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
	if err != nil {
		// wrong key and tampering are indistinguishable here
		return nil, ErrOpen
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
