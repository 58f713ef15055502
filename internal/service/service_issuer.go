// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-keeper/internal/events"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/store"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// issuerService lets the administrator grant or refuse issuer rights to
// registered universities.
type issuerService struct {
	requests store.IssuerRequestRepository
	events   events.Publisher
	logger   *logger.Logger
}

func NewIssuerService(requests store.IssuerRequestRepository, publisher events.Publisher, logger *logger.Logger) IssuerService {
	return &issuerService{requests: requests, events: publisher, logger: logger}
}

// ListRequests returns all requests; the caller filters by status.
func (s *issuerService) ListRequests(ctx context.Context) ([]models.IssuerRequest, error) {
	requests, err := s.requests.ListRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing issuer requests: %w", err)
	}
	return requests, nil
}

func (s *issuerService) Approve(ctx context.Context, actor, universityName string) (models.IssuerRequest, error) {
	return s.setStatus(ctx, actor, universityName, models.RequestApproved, events.IssuerApproved)
}

func (s *issuerService) Reject(ctx context.Context, actor, universityName string) (models.IssuerRequest, error) {
	return s.setStatus(ctx, actor, universityName, models.RequestRejected, events.IssuerRejected)
}

func (s *issuerService) setStatus(ctx context.Context, actor, universityName string, status models.RequestStatus, kind events.Kind) (models.IssuerRequest, error) {
	log := logger.FromContext(ctx)

	if universityName == "" {
		return models.IssuerRequest{}, fmt.Errorf("%w: universityName is required", ErrInvalidDataProvided)
	}

	request, err := s.requests.SetRequestStatus(ctx, universityName, status)
	if errors.Is(err, store.ErrRequestNotFound) {
		return models.IssuerRequest{}, ErrRequestNotFound
	}
	if err != nil {
		log.Err(err).Str("university", universityName).Msg("error updating issuer request")
		return models.IssuerRequest{}, fmt.Errorf("error updating issuer request: %w", err)
	}

	log.Info().Str("university", universityName).Str("status", string(status)).Str("by", actor).Msg("issuer request updated")
	publish(ctx, s.events, kind, universityName, actor)

	return request, nil
}

// IsApproved reports whether address belongs to a university with an
// approved request.
func (s *issuerService) IsApproved(ctx context.Context, address string) (bool, error) {
	request, err := s.requests.FindRequestByAddress(ctx, address)
	if errors.Is(err, store.ErrRequestNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error finding issuer request: %w", err)
	}
	return request.Status == models.RequestApproved, nil
}
