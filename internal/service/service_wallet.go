// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/cosmos/go-bip39"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/MKhiriev/go-cred-keeper/models"
)

// mnemonicWords is the length of a phrase encoding a 32-byte key.
const mnemonicWords = 24

// walletService encodes the secp256k1 private key itself as the BIP-39
// entropy of the recovery phrase, so decoding the phrase gives back the key
// and every phrase issued by the web portals recovers the same wallet.
type walletService struct{}

func NewWalletService() WalletService {
	return &walletService{}
}

func (w *walletService) NewWallet() (models.Wallet, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return models.Wallet{}, fmt.Errorf("error generating private key: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(crypto.FromECDSA(key))
	if err != nil {
		return models.Wallet{}, fmt.Errorf("error generating mnemonic: %w", err)
	}

	return walletOf(key, mnemonic), nil
}

// RecoverWallet rebuilds the wallet of mnemonic. Case and extra whitespace
// are ignored; a phrase that is not 24 words, fails the BIP-39 checksum or
// does not decode to a valid key yields [ErrInvalidMnemonic].
func (w *walletService) RecoverWallet(mnemonic string) (models.Wallet, error) {
	mnemonic = normalizeMnemonic(mnemonic)
	if n := len(strings.Fields(mnemonic)); n != mnemonicWords {
		return models.Wallet{}, fmt.Errorf("%w: expected %d words, got %d", ErrInvalidMnemonic, mnemonicWords, n)
	}

	// entropy followed by one checksum byte
	raw, err := bip39.MnemonicToByteArray(mnemonic)
	if err != nil {
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}

	key, err := crypto.ToECDSA(raw[:len(raw)-1])
	if err != nil {
		return models.Wallet{}, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}

	return walletOf(key, mnemonic), nil
}

func walletOf(key *ecdsa.PrivateKey, mnemonic string) models.Wallet {
	return models.Wallet{
		Address:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
		PrivateKey: hexutil.Encode(crypto.FromECDSA(key)),
		Mnemonic:   mnemonic,
	}
}

func normalizeMnemonic(m string) string {
	return strings.Join(strings.Fields(strings.ToLower(m)), " ")
}
