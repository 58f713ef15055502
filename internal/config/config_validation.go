// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

func validEnvelopeMode(mode string) bool {
	return mode == "gcm" || mode == "legacy"
}

func (cfg *ServerConfig) validate() error {
	switch {
	case cfg.App.EnvelopeKey == "":
		return fmt.Errorf("%w: envelope key is required", ErrInvalidAppConfigs)
	case !validEnvelopeMode(cfg.App.EnvelopeMode):
		return fmt.Errorf("%w: envelope mode %q", ErrInvalidAppConfigs, cfg.App.EnvelopeMode)
	case cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0:
		return fmt.Errorf("%w: token sign key and duration are required", ErrInvalidAppConfigs)
	case !common.IsHexAddress(cfg.App.GovAddress):
		return fmt.Errorf("%w: gov address %q", ErrInvalidAppConfigs, cfg.App.GovAddress)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.Files.Backend {
	case "local":
		if cfg.Storage.Files.Dir == "" {
			return fmt.Errorf("%w: files dir is required", ErrInvalidStorageConfigs)
		}
	case "s3":
		if cfg.Storage.Files.Bucket == "" {
			return fmt.Errorf("%w: files bucket is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: files backend %q", ErrInvalidStorageConfigs, cfg.Storage.Files.Backend)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.StatsInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.EnvelopeKey == "" || !validEnvelopeMode(cfg.App.EnvelopeMode) {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	switch cfg.Vault.Backend {
	case "sqlite", "badger":
		if cfg.Vault.Path == "" {
			return ErrInvalidVaultConfigs
		}
	default:
		return ErrInvalidVaultConfigs
	}

	return nil
}
