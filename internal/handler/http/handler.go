package http

import (
	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/envelope"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/metrics"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/internal/validators"
)

const defaultMetricsPath = "/metrics"

type Handler struct {
	services  *service.Services
	cipher    envelope.Cipher
	validator validators.Validator
	metrics   *metrics.Metrics

	metricsPath string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cipher envelope.Cipher, validator validators.Validator,
	m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	metricsPath := cfg.MetricsPath
	if metricsPath == "" {
		metricsPath = defaultMetricsPath
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		cipher:      cipher,
		validator:   validator,
		metrics:     m,
		metricsPath: metricsPath,
		logger:      logger,
	}
}
