package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/envelope"
	"github.com/MKhiriev/go-cred-keeper/internal/events"
	"github.com/MKhiriev/go-cred-keeper/internal/handler"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/metrics"
	"github.com/MKhiriev/go-cred-keeper/internal/server"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/internal/store"
	"github.com/MKhiriev/go-cred-keeper/internal/validators"
	"github.com/MKhiriev/go-cred-keeper/internal/workers"
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

	log := logger.NewLogger("credkeeper-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	publisher, err := events.NewPublisher(cfg.Events, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to event feed")
	}
	defer publisher.Close()

	cipher, err := envelope.New(cfg.App.EnvelopeMode, cfg.App.EnvelopeKey, crypto.NewKeyChain())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating envelope cipher")
	}

	validator, err := validators.NewPayloadValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("error compiling payload schemas")
	}

	m := metrics.New()
	services := service.NewServices(storages, publisher, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cipher, validator, m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewStatsWorker(storages.Requests, storages.Credentials, m, cfg.Workers.StatsInterval, log),
	)
	workersDone := make(chan struct{})
	go func() {
		background.Run(ctx)
		close(workersDone)
	}()

	srv.RunServer()

	stop()
	<-workersDone
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
