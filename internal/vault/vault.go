// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
)

const (
	recordPrefix = "v1:"
	saltSize     = 16
)

// Record is what a successful [Vault.Load] returns.
type Record struct {
	DisplayName string
	Wallet      models.WalletData
}

// Vault stores password-protected wallet records in a [KV].
type Vault struct {
	kv     KV
	kc     crypto.KeyChain
	logger *logger.Logger
}

// New returns a [Vault] over kv.
func New(kv KV, kc crypto.KeyChain, log *logger.Logger) *Vault {
	return &Vault{kv: kv, kc: kc, logger: log}
}

// Save writes the display name in clear and the wallet encrypted under
// password, replacing any previous record of username. Any failure is
// reported as [ErrSaveFailed] and leaves the previous record of username, if
// any, in place.
func (v *Vault) Save(ctx context.Context, username, displayName string, wallet models.WalletData, password string) error {
	record, err := v.seal(wallet, password)
	if err != nil {
		v.logger.Err(err).Str("func", "Vault.Save").Msg("error sealing wallet")
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	prevName, err := v.kv.Get(ctx, nameKey(username))
	hadName := err == nil
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		v.logger.Err(err).Str("func", "Vault.Save").Msg("error reading name slot")
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	if err = v.kv.Set(ctx, nameKey(username), displayName); err != nil {
		v.logger.Err(err).Str("func", "Vault.Save").Msg("error writing name slot")
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	if err = v.kv.Set(ctx, walletKey(username), record); err != nil {
		v.logger.Err(err).Str("func", "Vault.Save").Msg("error writing wallet slot")
		v.restoreName(ctx, username, prevName, hadName)
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	return nil
}

// restoreName puts the name slot back the way it was before a failed save.
// The wallet slot needs no restore since its write is the one that failed.
func (v *Vault) restoreName(ctx context.Context, username, prev string, existed bool) {
	var err error
	if existed {
		err = v.kv.Set(ctx, nameKey(username), prev)
	} else {
		err = v.kv.Delete(ctx, nameKey(username))
	}
	if err != nil {
		v.logger.Err(err).Str("func", "Vault.Save").Msg("error rolling back name slot")
	}
}

// Load opens the record of username with password.
func (v *Vault) Load(ctx context.Context, username, password string) (*Record, error) {
	name, err := v.DisplayName(ctx, username)
	if err != nil {
		return nil, err
	}

	record, err := v.kv.Get(ctx, walletKey(username))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrWalletMissing
	}
	if err != nil {
		return nil, fmt.Errorf("read wallet slot: %w", err)
	}

	wallet, err := v.open(record, password)
	if err != nil {
		return nil, err
	}

	return &Record{DisplayName: name, Wallet: wallet}, nil
}

// DisplayName reads the plaintext name slot of username.
func (v *Vault) DisplayName(ctx context.Context, username string) (string, error) {
	name, err := v.kv.Get(ctx, nameKey(username))
	if errors.Is(err, ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read name slot: %w", err)
	}
	return name, nil
}

func (v *Vault) seal(wallet models.WalletData, password string) (string, error) {
	plaintext, err := json.Marshal(wallet)
	if err != nil {
		return "", fmt.Errorf("marshal wallet: %w", err)
	}

	salt, err := v.kc.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	blob, err := v.kc.Seal(v.kc.DeriveKey(password, salt), plaintext)
	if err != nil {
		return "", err
	}

	return recordPrefix + base64.StdEncoding.EncodeToString(append(salt, blob...)), nil
}

func (v *Vault) open(record, password string) (models.WalletData, error) {
	var (
		plaintext []byte
		err       error
	)

	switch {
	case strings.HasPrefix(record, recordPrefix):
		plaintext, err = v.openV1(strings.TrimPrefix(record, recordPrefix), password)
	case strings.HasPrefix(record, crypto.SaltedPrefix):
		plaintext, err = crypto.DecryptPassphrase(record, password)
	default:
		err = errors.New("unrecognised record format")
	}
	if err != nil {
		v.logger.Debug().Err(err).Str("func", "Vault.open").Msg("wallet record did not open")
		return models.WalletData{}, ErrWrongPassword
	}

	return decodeWallet(plaintext)
}

func (v *Vault) openV1(encoded, password string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	if len(raw) <= saltSize {
		return nil, crypto.ErrCiphertextTooShort
	}
	salt, blob := raw[:saltSize], raw[saltSize:]
	return v.kc.Open(v.kc.DeriveKey(password, salt), blob)
}

// decodeWallet never hands back a partially decoded wallet.
func decodeWallet(plaintext []byte) (models.WalletData, error) {
	if len(plaintext) == 0 || !utf8.Valid(plaintext) {
		return models.WalletData{}, ErrWrongPassword
	}

	var wallet models.WalletData
	if err := json.Unmarshal(plaintext, &wallet); err != nil {
		return models.WalletData{}, ErrWrongPassword
	}
	if wallet.Address == "" || wallet.PrivateKey == "" {
		return models.WalletData{}, ErrWrongPassword
	}
	return wallet, nil
}
