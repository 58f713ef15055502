// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// WalletService creates and recovers secp256k1 wallets from BIP-39
// mnemonics.
type WalletService interface {
	NewWallet() (models.Wallet, error)
	RecoverWallet(mnemonic string) (models.Wallet, error)
}

type AuthService interface {
	Register(ctx context.Context, role models.Role, name string) (models.Wallet, error)
	Login(ctx context.Context, address string) (models.Account, error)
	Recover(ctx context.Context, mnemonic string) (models.Wallet, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type IssuerService interface {
	ListRequests(ctx context.Context) ([]models.IssuerRequest, error)
	Approve(ctx context.Context, actor, universityName string) (models.IssuerRequest, error)
	Reject(ctx context.Context, actor, universityName string) (models.IssuerRequest, error)
	IsApproved(ctx context.Context, address string) (bool, error)
}

type CredentialService interface {
	Issue(ctx context.Context, issuer string, req models.IssueRequest) (models.Credential, error)
	List(ctx context.Context, actor string, role models.Role) ([]models.Credential, error)
	Verify(ctx context.Context, hash string) (models.Verification, error)
	Revoke(ctx context.Context, issuer, hash string) (models.Credential, error)
	File(ctx context.Context, cid string) ([]byte, error)
}

type AppInfoService interface {
	Version(ctx context.Context) models.AppBuildInfo
}
