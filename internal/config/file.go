// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] with snake_case keys for both JSON
// and YAML files.
type fileConfig struct {
	App struct {
		EnvelopeKey   string   `json:"envelope_key" yaml:"envelope_key"`
		EnvelopeMode  string   `json:"envelope_mode" yaml:"envelope_mode"`
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		GovAddress    string   `json:"gov_address" yaml:"gov_address"`
		LogLevel      string   `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`

		Files struct {
			Backend  string `json:"backend" yaml:"backend"`
			Dir      string `json:"dir" yaml:"dir"`
			Bucket   string `json:"bucket" yaml:"bucket"`
			Region   string `json:"region" yaml:"region"`
			Endpoint string `json:"endpoint" yaml:"endpoint"`
		} `json:"files" yaml:"files"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		MetricsPath    string   `json:"metrics_path" yaml:"metrics_path"`
	} `json:"server" yaml:"server"`

	Events struct {
		NATSURL       string `json:"nats_url" yaml:"nats_url"`
		SubjectPrefix string `json:"subject_prefix" yaml:"subject_prefix"`
	} `json:"events" yaml:"events"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RetryCount     int      `json:"retry_count" yaml:"retry_count"`
		ChatAddress    string   `json:"chat_address" yaml:"chat_address"`
	} `json:"adapter" yaml:"adapter"`

	Vault struct {
		Backend     string `json:"backend" yaml:"backend"`
		Path        string `json:"path" yaml:"path"`
		DownloadDir string `json:"download_dir" yaml:"download_dir"`
	} `json:"vault" yaml:"vault"`

	Workers struct {
		StatsInterval Duration `json:"stats_interval" yaml:"stats_interval"`
	} `json:"workers" yaml:"workers"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are YAML,
// anything else is JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			EnvelopeKey:   fc.App.EnvelopeKey,
			EnvelopeMode:  fc.App.EnvelopeMode,
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			GovAddress:    fc.App.GovAddress,
			LogLevel:      fc.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
			Files: Files{
				Backend:  fc.Storage.Files.Backend,
				Dir:      fc.Storage.Files.Dir,
				Bucket:   fc.Storage.Files.Bucket,
				Region:   fc.Storage.Files.Region,
				Endpoint: fc.Storage.Files.Endpoint,
			},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			GRPCAddress:    fc.Server.GRPCAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
			MetricsPath:    fc.Server.MetricsPath,
		},
		Events: Events{
			NATSURL:       fc.Events.NATSURL,
			SubjectPrefix: fc.Events.SubjectPrefix,
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			RetryCount:     fc.Adapter.RetryCount,
			ChatAddress:    fc.Adapter.ChatAddress,
		},
		Vault: Vault{
			Backend:     fc.Vault.Backend,
			Path:        fc.Vault.Path,
			DownloadDir: fc.Vault.DownloadDir,
		},
		Workers: Workers{
			StatsInterval: time.Duration(fc.Workers.StatsInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in JSON and YAML, and from nanosecond numbers in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
