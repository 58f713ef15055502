// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/metrics"
	"github.com/MKhiriev/go-cred-keeper/internal/store"
	"github.com/MKhiriev/go-cred-keeper/models"
)

const defaultStatsInterval = 30 * time.Second

var statusLabels = map[models.RequestStatus]string{
	models.RequestPending:  "pending",
	models.RequestApproved: "approved",
	models.RequestRejected: "rejected",
}

// StatsWorker periodically copies ledger counters into Prometheus gauges.
type StatsWorker struct {
	requests    store.IssuerRequestRepository
	credentials store.CredentialRepository
	metrics     *metrics.Metrics
	interval    time.Duration
	logger      *logger.Logger
}

func NewStatsWorker(requests store.IssuerRequestRepository, credentials store.CredentialRepository,
	m *metrics.Metrics, interval time.Duration, logger *logger.Logger) *StatsWorker {
	if interval <= 0 {
		interval = defaultStatsInterval
	}
	return &StatsWorker{
		requests:    requests,
		credentials: credentials,
		metrics:     m,
		interval:    interval,
		logger:      logger,
	}
}

// Run refreshes the gauges once right away and then on every tick.
func (s *StatsWorker) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("stats worker started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.refresh(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("stats worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *StatsWorker) refresh(ctx context.Context) {
	counts, err := s.requests.CountByStatus(ctx)
	if err != nil {
		s.logger.Err(err).Msg("error counting issuer requests")
	} else {
		for status, label := range statusLabels {
			s.metrics.IssuerRequests.WithLabelValues(label).Set(float64(counts[status]))
		}
	}

	active, revoked, err := s.credentials.Count(ctx)
	if err != nil {
		s.logger.Err(err).Msg("error counting credentials")
		return
	}
	s.metrics.Credentials.WithLabelValues(metrics.StateActive).Set(float64(active))
	s.metrics.Credentials.WithLabelValues(metrics.StateRevoked).Set(float64(revoked))
}
