// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Events  Events  `envPrefix:"EVENTS_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Vault   Vault   `envPrefix:"VAULT_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML config file.
	// Env: CONFIG, flags: -c / -config.
	FilePath string `env:"CONFIG"`
}

// App holds settings shared by both binaries.
type App struct {
	// EnvelopeKey is the secret every client and the server wrap API bodies
	// with. Must be identical on both sides.
	// Env: APP_ENVELOPE_KEY
	EnvelopeKey string `env:"ENVELOPE_KEY"`

	// EnvelopeMode selects the envelope cipher: "gcm" or "legacy".
	// Env: APP_ENVELOPE_MODE
	EnvelopeMode string `env:"ENVELOPE_MODE"`

	// TokenSignKey signs and verifies access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every access token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an access token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// GovAddress is the wallet address of the government administrator.
	// Env: APP_GOV_ADDRESS
	GovAddress string `env:"GOV_ADDRESS"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the server persistence backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the ledger database.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files configures the content-addressed document store.
type Files struct {
	// Backend is "local" or "s3".
	// Env: STORAGE_FILES_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the local directory documents are stored in.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`

	// Bucket, Region and Endpoint configure the S3 backend. Endpoint is
	// optional and enables path-style addressing for S3-compatible stores.
	// Env: STORAGE_FILES_BUCKET, STORAGE_FILES_REGION, STORAGE_FILES_ENDPOINT
	Bucket   string `env:"BUCKET"`
	Region   string `env:"REGION"`
	Endpoint string `env:"ENDPOINT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the host:port the HTTP API listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port the gRPC health service listens on.
	// Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MetricsPath is where Prometheus metrics are exposed.
	// Env: SERVER_METRICS_PATH
	MetricsPath string `env:"METRICS_PATH"`
}

// Events configures the NATS event feed. An empty URL disables it.
type Events struct {
	// Env: EVENTS_NATS_URL
	NATSURL string `env:"NATS_URL"`

	// Env: EVENTS_SUBJECT_PREFIX
	SubjectPrefix string `env:"SUBJECT_PREFIX"`
}

// Adapter holds the client's outbound settings.
type Adapter struct {
	// HTTPAddress is the base URL of the API server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times read-only calls are retried.
	// Env: ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// ChatAddress is the base URL of the chat assistant backend.
	// Env: ADAPTER_CHAT_ADDRESS
	ChatAddress string `env:"CHAT_ADDRESS"`
}

// Vault configures the client's local secret store.
type Vault struct {
	// Backend is "sqlite" or "badger".
	// Env: VAULT_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the SQLite file or the Badger directory.
	// Env: VAULT_PATH
	Path string `env:"PATH"`

	// DownloadDir is where documents fetched from the file store are saved.
	// Env: VAULT_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// StatsInterval is how often ledger gauges are refreshed.
	// Env: WORKERS_STATS_INTERVAL
	StatsInterval time.Duration `env:"STATS_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from env, flags,
// the config file and defaults, in that order of precedence.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withFile().
		withDefaults().
		build()
}
