// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cred-keeper/internal/events"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/store"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// credentialService issues, lists, verifies and revokes credentials. A
// credential is identified by the content hash of its document; the
// document itself is kept in the file store under its CID.
type credentialService struct {
	accounts    store.AccountRepository
	credentials store.CredentialRepository
	files       store.FileStore
	issuers     IssuerService
	events      events.Publisher
	logger      *logger.Logger
}

func NewCredentialService(storages *store.Storages, issuers IssuerService, publisher events.Publisher, logger *logger.Logger) CredentialService {
	return &credentialService{
		accounts:    storages.Accounts,
		credentials: storages.Credentials,
		files:       storages.Files,
		issuers:     issuers,
		events:      publisher,
		logger:      logger,
	}
}

// Issue records a credential for a student. The issuer must be an approved
// university, the holder a registered student, and the hash must be the
// content hash of the submitted file.
func (s *credentialService) Issue(ctx context.Context, issuer string, req models.IssueRequest) (models.Credential, error) {
	log := logger.FromContext(ctx)

	approved, err := s.issuers.IsApproved(ctx, issuer)
	if err != nil {
		return models.Credential{}, err
	}
	if !approved {
		return models.Credential{}, ErrNotApprovedIssuer
	}

	holder, err := s.accounts.FindAccount(ctx, req.Student)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Credential{}, ErrHolderNotStudent
	}
	if err != nil {
		return models.Credential{}, fmt.Errorf("error finding holder: %w", err)
	}
	if holder.Role != models.RoleStudent {
		return models.Credential{}, ErrHolderNotStudent
	}

	hash := strings.ToLower(req.CredentialHash)
	if hash != utils.ContentHash(req.CredentialFile) {
		log.Warn().Str("hash", hash).Msg("credential hash does not match the file")
		return models.Credential{}, ErrHashMismatch
	}

	cid, err := s.files.Put(ctx, []byte(req.CredentialFile))
	if err != nil {
		log.Err(err).Msg("error storing credential file")
		return models.Credential{}, fmt.Errorf("error storing credential file: %w", err)
	}

	credential, err := s.credentials.CreateCredential(ctx, models.Credential{
		Hash:   hash,
		Holder: holder.Address,
		Issuer: issuer,
		CID:    cid,
	})
	if errors.Is(err, store.ErrCredentialExists) {
		return models.Credential{}, ErrCredentialExists
	}
	if err != nil {
		return models.Credential{}, fmt.Errorf("error recording credential: %w", err)
	}

	log.Info().Str("hash", hash).Str("cid", cid).Str("holder", holder.Address).Msg("credential issued")
	publish(ctx, s.events, events.CredentialIssued, hash, issuer)

	return credential, nil
}

// List returns the credentials a student holds or a university issued.
func (s *credentialService) List(ctx context.Context, actor string, role models.Role) ([]models.Credential, error) {
	var (
		credentials []models.Credential
		err         error
	)

	switch role {
	case models.RoleStudent:
		credentials, err = s.credentials.ListByHolder(ctx, actor)
	case models.RoleUniversity:
		credentials, err = s.credentials.ListByIssuer(ctx, actor)
	default:
		return nil, ErrInvalidRole
	}
	if err != nil {
		return nil, fmt.Errorf("error listing credentials: %w", err)
	}

	return credentials, nil
}

// Verify reports whether hash names an issued, unrevoked credential. An
// unknown hash is not an error; it is simply not valid.
func (s *credentialService) Verify(ctx context.Context, hash string) (models.Verification, error) {
	hash = strings.ToLower(strings.TrimSpace(hash))

	credential, err := s.credentials.FindCredential(ctx, hash)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return models.Verification{Hash: hash}, nil
	}
	if err != nil {
		return models.Verification{}, fmt.Errorf("error finding credential: %w", err)
	}

	return models.Verification{
		Hash:       hash,
		Valid:      !credential.Revoked,
		Revoked:    credential.Revoked,
		Credential: &credential,
	}, nil
}

// Revoke marks a credential as revoked. Only the issuing university may
// revoke, and only once.
func (s *credentialService) Revoke(ctx context.Context, issuer, hash string) (models.Credential, error) {
	hash = strings.ToLower(strings.TrimSpace(hash))

	credential, err := s.credentials.FindCredential(ctx, hash)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		return models.Credential{}, fmt.Errorf("error finding credential: %w", err)
	}

	if !strings.EqualFold(credential.Issuer, issuer) {
		return models.Credential{}, ErrNotCredentialIssuer
	}
	if credential.Revoked {
		return models.Credential{}, ErrAlreadyRevoked
	}

	revoked, err := s.credentials.RevokeCredential(ctx, hash, issuer)
	if errors.Is(err, store.ErrCredentialNotFound) {
		// revoked concurrently
		return models.Credential{}, ErrAlreadyRevoked
	}
	if err != nil {
		return models.Credential{}, fmt.Errorf("error revoking credential: %w", err)
	}

	logger.FromContext(ctx).Info().Str("hash", hash).Str("issuer", issuer).Msg("credential revoked")
	publish(ctx, s.events, events.CredentialRevoked, hash, issuer)

	return revoked, nil
}

// File returns the stored document of cid, which is the data URL the
// credential was issued with.
func (s *credentialService) File(ctx context.Context, cid string) ([]byte, error) {
	data, err := s.files.Get(ctx, cid)
	if errors.Is(err, store.ErrFileNotFound) || errors.Is(err, store.ErrInvalidCID) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}
