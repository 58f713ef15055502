// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain owns the symmetric primitives shared by the envelope cipher and
// the local vault. It knows nothing about transport or storage.
//
// Scheme used by the vault:
//
//	salt = GenerateSalt()
//	key  = DeriveKey(password, salt)   argon2id
//	blob = Seal(key, plaintext)        nonce ‖ AES-256-GCM ciphertext
type KeyChain interface {
	// GenerateSalt returns 16 random bytes from the OS CSPRNG.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches a password into a 256-bit key with Argon2id.
	DeriveKey(password string, salt []byte) []byte

	// DeriveSubKey expands a configured secret into a 256-bit key bound to
	// info with HKDF-SHA256.
	DeriveSubKey(secret []byte, info string) ([]byte, error)

	// Seal encrypts plaintext with AES-256-GCM. The result is nonce ‖ ciphertext.
	Seal(key, plaintext []byte) ([]byte, error)

	// Open reverses Seal. A wrong key or a tampered blob yields [ErrOpen].
	Open(key, blob []byte) ([]byte, error)
}
