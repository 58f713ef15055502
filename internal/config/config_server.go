// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the configuration view used by the API server.
type ServerConfig struct {
	App     App
	Storage Storage
	Server  Server
	Events  Events
	Workers Workers
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerView()
	return serverCfg, serverCfg.validate()
}

// ServerView projects the fields the server needs.
func (cfg *StructuredConfig) ServerView() *ServerConfig {
	return &ServerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Events:  cfg.Events,
		Workers: cfg.Workers,
	}
}
