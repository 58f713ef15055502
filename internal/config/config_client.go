// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ClientApp holds the client-side subset of [App].
type ClientApp struct {
	EnvelopeKey  string
	EnvelopeMode string
	LogLevel     string
}

// ClientConfig is the configuration view used by the terminal client.
type ClientConfig struct {
	App     ClientApp
	Adapter Adapter
	Vault   Vault
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	return clientCfg, clientCfg.validate()
}

// ClientView projects the fields the client needs.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			EnvelopeKey:  cfg.App.EnvelopeKey,
			EnvelopeMode: cfg.App.EnvelopeMode,
			LogLevel:     cfg.App.LogLevel,
		},
		Adapter: cfg.Adapter,
		Vault:   cfg.Vault,
	}
}
