// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// commandLineArgs drops test runner flags so a binary under `go test` still
// parses cleanly.
func commandLineArgs() []string {
	args := make([]string, 0, len(os.Args))
	for _, a := range os.Args[1:] {
		if strings.HasPrefix(a, "-test.") {
			continue
		}
		args = append(args, a)
	}
	return args
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a             server HTTP address in format [host]:[port]
//	-grpc-address  gRPC health address in format [host]:[port]
//	-d             database DSN
//	-f             file storage directory
//	-files-backend local or s3
//	-c/-config     JSON or YAML config file path
//	-envelope-key  envelope key shared with clients
//	-envelope-mode gcm or legacy
//	-token-sign-key, -token-issuer, -token-duration
//	-gov-address   government wallet address
//	-request-timeout inbound request timeout
//	-nats          NATS URL for the event feed
//	-server        API base URL used by the client
//	-chat          chat assistant base URL used by the client
//	-vault         local vault path used by the client
//	-vault-backend sqlite or badger
//	-download-dir  where the client saves downloaded documents
//	-log-level     zerolog level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("credkeeper", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Files.Dir, "f", "", "File storage directory")
	fs.StringVar(&cfg.Storage.Files.Backend, "files-backend", "", "File storage backend (local, s3)")
	fs.StringVar(&cfg.FilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.FilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.App.EnvelopeKey, "envelope-key", "", "Envelope key")
	fs.StringVar(&cfg.App.EnvelopeMode, "envelope-mode", "", "Envelope mode (gcm, legacy)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&cfg.App.GovAddress, "gov-address", "", "Government wallet address")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Events.NATSURL, "nats", "", "NATS URL")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "API server base URL")
	fs.StringVar(&cfg.Adapter.ChatAddress, "chat", "", "Chat assistant base URL")
	fs.StringVar(&cfg.Vault.Path, "vault", "", "Local vault path")
	fs.StringVar(&cfg.Vault.Backend, "vault-backend", "", "Local vault backend (sqlite, badger)")
	fs.StringVar(&cfg.Vault.DownloadDir, "download-dir", "", "Directory downloaded documents are saved to")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on every interface.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)
