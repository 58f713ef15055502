// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the credential API.
//
// [ServerAdapter] has one method per server route. Every call wraps its
// payload into an envelope, sends it, unwraps the reply and returns a typed
// result. Transport failures, non-2xx replies and undecryptable responses
// all surface as [*RequestError], which wraps one of the sentinel values in
// errors.go so callers can use [errors.Is].
//
// [ChatClient] talks to the assistant backend in plain JSON.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the typed client of the credential API.
type ServerAdapter interface {
	// Register creates a wallet for a new student or university account.
	// The reply carries the key pair and the recovery phrase.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login exchanges a wallet address for a bearer token and the role the
	// ledger has on record.
	Login(ctx context.Context, walletAddress string) (models.LoginResponse, error)

	// Recover derives the key pair of an existing wallet from its mnemonic.
	Recover(ctx context.Context, mnemonic string) (models.RecoverResponse, error)

	// IssueCredential records a credential for a student. Issuer only.
	IssueCredential(ctx context.Context, req models.IssueRequest) (models.IssueResponse, error)

	// ListCredentials returns the credentials held or issued by the caller.
	ListCredentials(ctx context.Context) ([]models.Credential, error)

	// VerifyCredential looks a content hash up in the ledger.
	VerifyCredential(ctx context.Context, hash string) (models.VerifyResponse, error)

	// RevokeCredential marks a credential issued by the caller as revoked.
	RevokeCredential(ctx context.Context, hash string) error

	// ListRequests returns every issuer request. Admin only.
	ListRequests(ctx context.Context) ([]models.IssuerRequest, error)

	// Approve and Reject decide a pending issuer request. Admin only.
	Approve(ctx context.Context, universityName string) error
	Reject(ctx context.Context, universityName string) error

	// FetchFile returns the stored document addressed by cid as a data URL.
	FetchFile(ctx context.Context, cid string) (string, error)

	// GatewayURL is the public link under which the document addressed by
	// cid can be opened in a browser.
	GatewayURL(cid string) string
}

// ChatClient sends a message to the assistant backend and returns its reply.
type ChatClient interface {
	Send(ctx context.Context, message string) (string, error)
}

// TokenSource yields the bearer token of the current session, or "" when
// nobody is logged in. *vault.Session satisfies it.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
