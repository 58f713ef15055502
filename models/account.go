// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a registered wallet as recorded by the ledger.
//
// The private key never reaches the ledger: it is returned once at
// registration and afterwards lives only in the holder's local vault.
type Account struct {
	// Address is the EIP-55 checksummed wallet address and the account key.
	Address string `json:"address"`

	// Role is the portal the account was registered for.
	Role Role `json:"role"`

	// Name is the student or university name given at registration.
	Name string `json:"name"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewAccount is the key material handed to the client right after a wallet
// has been created or recovered.
type NewAccount struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
}

// WalletData is the secret part of a vault record. It is serialized to JSON
// and encrypted with the user's password before it touches local storage.
type WalletData struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
	Role       Role   `json:"role"`
}

// Wallet bundles a freshly generated key pair with its recovery phrase.
type Wallet struct {
	Address    string
	PrivateKey string
	Mnemonic   string
}
