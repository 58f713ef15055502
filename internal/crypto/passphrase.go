// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// Passphrase mode reproduces the OpenSSL "Salted__" format that CryptoJS
// emits for AES.encrypt(text, passphrase): an 8-byte salt, key and IV
// derived with EVP_BytesToKey over MD5, AES-256-CBC with PKCS#7 padding,
// base64 of "Salted__" ‖ salt ‖ ciphertext.
//
// The format carries no integrity tag. A wrong passphrase is only noticed
// when the padding or the decoded plaintext turns out to be garbage.

var saltedMagic = []byte("Salted__")

// SaltedPrefix is how every base64 passphrase ciphertext starts.
const SaltedPrefix = "U2FsdGVkX1"

// EncryptPassphrase encrypts plaintext under passphrase in the salted format.
func EncryptPassphrase(plaintext []byte, passphrase string) (string, error) {
	salt := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return encryptPassphraseWithSalt(plaintext, passphrase, salt)
}

func encryptPassphraseWithSalt(plaintext []byte, passphrase string, salt []byte) (string, error) {
	key, iv := evpBytesToKey([]byte(passphrase), salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	out := make([]byte, len(saltedMagic)+len(salt)+len(padded))
	n := copy(out, saltedMagic)
	n += copy(out[n:], salt)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[n:], padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptPassphrase reverses [EncryptPassphrase].
func DecryptPassphrase(encoded string, passphrase string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	if len(raw) < 16 || !bytes.Equal(raw[:8], saltedMagic) {
		return nil, ErrNotSalted
	}

	salt, ct := raw[8:16], raw[16:]
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return nil, ErrCiphertextTooShort
	}

	key, iv := evpBytesToKey([]byte(passphrase), salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	pt := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(pt, ct)

	return pkcs7Unpad(pt, aes.BlockSize)
}

// evpBytesToKey derives a 32-byte key and 16-byte IV, one MD5 round per block.
func evpBytesToKey(passphrase, salt []byte) (key, iv []byte) {
	var derived, prev []byte
	for len(derived) < 48 {
		h := md5.New()
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	return derived[:32], derived[32:48]
}

func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(append([]byte{}, b...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 || len(b)%size != 0 {
		return nil, ErrBadPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, ErrBadPadding
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, ErrBadPadding
		}
	}
	return b[:len(b)-n], nil
}
