// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/events"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/store"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// Services bundles the server's business logic.
type Services struct {
	WalletService     WalletService
	AuthService       AuthService
	IssuerService     IssuerService
	CredentialService CredentialService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, publisher events.Publisher, cfg config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	wallets := NewWalletService()
	issuers := NewIssuerService(storages.Requests, publisher, logger)

	return &Services{
		WalletService:     wallets,
		AuthService:       NewAuthService(storages, wallets, publisher, cfg.App, logger),
		IssuerService:     issuers,
		CredentialService: NewCredentialService(storages, issuers, publisher, logger),
		AppInfoService:    NewAppInfoService(buildInfo),
	}
}
