package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/internal/client"
	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/envelope"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/internal/tui"
	"github.com/MKhiriev/go-cred-keeper/internal/vault"
	"github.com/MKhiriev/go-cred-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("credkeeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	cipher, err := envelope.New(cfg.App.EnvelopeMode, cfg.App.EnvelopeKey, crypto.NewKeyChain())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating envelope cipher")
	}

	kv, err := vault.OpenKV(ctx, cfg.Vault.Backend, cfg.Vault.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening local vault")
	}
	defer kv.Close()

	secrets := vault.New(kv, crypto.NewKeyChain(), log)
	session := vault.NewSession(kv)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cipher, session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	var chat adapter.ChatClient
	if cfg.Adapter.ChatAddress != "" {
		if chat, err = adapter.NewChatClient(cfg.Adapter, log); err != nil {
			log.Warn().Err(err).Msg("chat assistant disabled")
			chat = nil
		}
	}

	services := service.NewClientServices(secrets, session, serverAdapter, chat, log)

	ui, err := tui.New(services, buildInfo, cfg.Vault.DownloadDir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Error().Err(err).Msg("client run error")
	}
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
