// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
)

// keyFile is the JSON document inside an admin key file. Older files name
// the field address.
type keyFile struct {
	WalletAddress string `json:"walletAddress,omitempty"`
	Address       string `json:"address,omitempty"`
}

// OpenKeyFile decrypts an admin key file with password and returns the
// wallet address it holds. The document may itself be JSON-string encoded.
func OpenKeyFile(content, password string) (string, error) {
	plaintext, err := crypto.DecryptPassphrase(strings.TrimSpace(content), password)
	if err != nil || len(plaintext) == 0 {
		return "", ErrKeyFileDecrypt
	}

	var doc json.RawMessage = plaintext
	var nested string
	if json.Unmarshal(doc, &nested) == nil {
		doc = json.RawMessage(nested)
	}

	var kf keyFile
	if err = json.Unmarshal(doc, &kf); err != nil {
		return "", ErrKeyFileDecrypt
	}

	address := kf.WalletAddress
	if address == "" {
		address = kf.Address
	}
	if address == "" {
		return "", ErrKeyFileAddress
	}
	return address, nil
}

// SealKeyFile produces an admin key file for address readable by
// [OpenKeyFile] and by the web portal.
func SealKeyFile(address, password string) (string, error) {
	if address == "" {
		return "", ErrKeyFileAddress
	}
	doc, err := json.Marshal(keyFile{WalletAddress: address})
	if err != nil {
		return "", err
	}
	sealed, err := crypto.EncryptPassphrase(doc, password)
	if err != nil {
		return "", fmt.Errorf("seal key file: %w", err)
	}
	return sealed, nil
}
