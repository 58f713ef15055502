// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "context"

//go:generate mockgen -source=kv.go -destination=../mock/kv_mock.go -package=mock

// KV is the persistent string store the vault and session live in.
// Get returns [ErrKeyNotFound] for absent keys.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const (
	namePrefix   = "user_name_"
	walletPrefix = "user_wallet_"

	keyJWT    = "jwt"
	keyRole   = "role"
	keyWallet = "wallet"
)

func nameKey(username string) string {
	return namePrefix + username
}

func walletKey(username string) string {
	return walletPrefix + username
}
