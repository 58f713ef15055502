// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

type clientCredentialService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientCredentialService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientCredentialService {
	return &clientCredentialService{adapter: serverAdapter, logger: logger}
}

func (c *clientCredentialService) Issue(ctx context.Context, holder, path string) (models.IssuedCredential, error) {
	holder = strings.TrimSpace(holder)
	if holder == "" || strings.TrimSpace(path) == "" {
		return models.IssuedCredential{}, ErrMissingHolderOrFile
	}

	file, err := FileDataURL(path)
	if err != nil {
		return models.IssuedCredential{}, err
	}
	hash := utils.ContentHash(file)

	resp, err := c.adapter.IssueCredential(ctx, models.IssueRequest{
		Student:        holder,
		CredentialHash: hash,
		CredentialFile: file,
	})
	if err != nil {
		return models.IssuedCredential{}, fmt.Errorf("issue credential: %w", err)
	}

	c.logger.Info().Str("hash", hash).Str("cid", resp.CID).Msg("credential issued")
	return models.IssuedCredential{Hash: hash, CID: resp.CID}, nil
}

func (c *clientCredentialService) List(ctx context.Context) ([]models.Credential, error) {
	credentials, err := c.adapter.ListCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("list credentials: %w", err)
	}
	return credentials, nil
}

func (c *clientCredentialService) Verify(ctx context.Context, path string) (models.VerifyResult, error) {
	file, err := FileDataURL(path)
	if err != nil {
		return models.VerifyResult{}, err
	}
	hash := utils.ContentHash(file)

	resp, err := c.adapter.VerifyCredential(ctx, hash)
	if err != nil {
		return models.VerifyResult{Hash: hash}, fmt.Errorf("verify credential: %w", err)
	}

	return models.VerifyResult{
		Hash:       hash,
		Valid:      resp.Valid,
		Revoked:    resp.Revoked,
		Credential: resp.Credential,
	}, nil
}

// Revoke implements [ClientCredentialService]. hash is the content hash
// shown on the dashboards and is sent unchanged apart from case.
func (c *clientCredentialService) Revoke(ctx context.Context, hash string) error {
	hash = strings.ToLower(strings.TrimSpace(hash))
	if hash == "" {
		return ErrMissingCredentialID
	}
	if !utils.IsContentHash(hash) {
		return ErrInvalidCredentialID
	}

	if err := c.adapter.RevokeCredential(ctx, hash); err != nil {
		return fmt.Errorf("revoke credential: %w", err)
	}

	c.logger.Info().Str("hash", hash).Msg("credential revoked")
	return nil
}

func (c *clientCredentialService) Link(cid string) string {
	return c.adapter.GatewayURL(cid)
}

func (c *clientCredentialService) Download(ctx context.Context, cid, dir string) (string, error) {
	file, err := c.adapter.FetchFile(ctx, cid)
	if err != nil {
		return "", fmt.Errorf("fetch file: %w", err)
	}

	mediaType, data, err := utils.ParseDataURL(file)
	if err != nil {
		return "", fmt.Errorf("decode file: %w", err)
	}

	path := filepath.Join(dir, documentName(cid, mediaType))
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
