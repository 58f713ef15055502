package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
)

type clientIssuerService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientIssuerService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientIssuerService {
	return &clientIssuerService{adapter: serverAdapter, logger: logger}
}

func (c *clientIssuerService) Pending(ctx context.Context) ([]models.IssuerRequest, error) {
	return c.withStatus(ctx, models.RequestPending)
}

func (c *clientIssuerService) Approved(ctx context.Context) ([]models.IssuerRequest, error) {
	return c.withStatus(ctx, models.RequestApproved)
}

func (c *clientIssuerService) Approve(ctx context.Context, universityName string) error {
	universityName = strings.TrimSpace(universityName)
	if universityName == "" {
		return ErrInvalidDataProvided
	}
	if err := c.adapter.Approve(ctx, universityName); err != nil {
		return fmt.Errorf("approve %q: %w", universityName, err)
	}
	c.logger.Info().Str("university", universityName).Msg("issuer approved")
	return nil
}

func (c *clientIssuerService) Reject(ctx context.Context, universityName string) error {
	universityName = strings.TrimSpace(universityName)
	if universityName == "" {
		return ErrInvalidDataProvided
	}
	if err := c.adapter.Reject(ctx, universityName); err != nil {
		return fmt.Errorf("reject %q: %w", universityName, err)
	}
	c.logger.Info().Str("university", universityName).Msg("issuer rejected")
	return nil
}

func (c *clientIssuerService) withStatus(ctx context.Context, status models.RequestStatus) ([]models.IssuerRequest, error) {
	requests, err := c.adapter.ListRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	filtered := make([]models.IssuerRequest, 0, len(requests))
	for _, r := range requests {
		if r.Status == status {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}
