// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Transactor runs a unit of work atomically. See [DB.InTx].
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccount(ctx context.Context, address string) (models.Account, error)
	FindAccountByName(ctx context.Context, role models.Role, name string) (models.Account, error)
}

type IssuerRequestRepository interface {
	CreateRequest(ctx context.Context, request models.IssuerRequest) (models.IssuerRequest, error)
	ListRequests(ctx context.Context) ([]models.IssuerRequest, error)
	SetRequestStatus(ctx context.Context, universityName string, status models.RequestStatus) (models.IssuerRequest, error)
	FindRequestByAddress(ctx context.Context, address string) (models.IssuerRequest, error)
	CountByStatus(ctx context.Context) (map[models.RequestStatus]int64, error)
}

type CredentialRepository interface {
	CreateCredential(ctx context.Context, credential models.Credential) (models.Credential, error)
	FindCredential(ctx context.Context, hash string) (models.Credential, error)
	ListByHolder(ctx context.Context, holder string) ([]models.Credential, error)
	ListByIssuer(ctx context.Context, issuer string) ([]models.Credential, error)
	RevokeCredential(ctx context.Context, hash, issuer string) (models.Credential, error)
	Count(ctx context.Context) (active, revoked int64, err error)
}

// FileStore keeps credential documents addressed by their CID.
type FileStore interface {
	Put(ctx context.Context, data []byte) (string, error)
	Get(ctx context.Context, cid string) ([]byte, error)
}
