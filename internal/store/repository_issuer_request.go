// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// issuerRequestRepository stores the universities' requests for issuer
// rights in the "issuer_requests" table, keyed by university name.
type issuerRequestRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewIssuerRequestRepository(db *DB, logger *logger.Logger) IssuerRequestRepository {
	logger.Debug().Msg("creating issuer request repository")
	return &issuerRequestRepository{
		db:     db,
		logger: logger,
	}
}

func scanIssuerRequest(row scanner) (models.IssuerRequest, error) {
	var (
		r      models.IssuerRequest
		status string
	)
	if err := row.Scan(&r.UniversityName, &r.Address, &status, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return models.IssuerRequest{}, err
	}
	r.Status = models.RequestStatus(status)
	return r, nil
}

// CreateRequest inserts a request. A university name that is already taken
// yields [ErrRequestExists].
func (r *issuerRequestRepository) CreateRequest(ctx context.Context, request models.IssuerRequest) (models.IssuerRequest, error) {
	if request.Status == "" {
		request.Status = models.RequestPending
	}

	query, args, err := buildInsertIssuerRequestQuery(request)
	if err != nil {
		return models.IssuerRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanIssuerRequest(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*issuerRequestRepository.CreateRequest").Msg("error inserting issuer request")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.IssuerRequest{}, ErrRequestExists
		default:
			return models.IssuerRequest{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// ListRequests returns every request regardless of status, oldest first.
func (r *issuerRequestRepository) ListRequests(ctx context.Context) ([]models.IssuerRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIssuerRequestsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var requests []models.IssuerRequest
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		requests = make([]models.IssuerRequest, 0)
		for rows.Next() {
			request, err := scanIssuerRequest(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			requests = append(requests, request)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*issuerRequestRepository.ListRequests").Msg("error selecting issuer requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return requests, nil
}

// SetRequestStatus moves the request of universityName to status.
func (r *issuerRequestRepository) SetRequestStatus(ctx context.Context, universityName string, status models.RequestStatus) (models.IssuerRequest, error) {
	query, args, err := buildUpdateIssuerRequestStatusQuery(universityName, status, time.Now().UTC())
	if err != nil {
		return models.IssuerRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanIssuerRequest(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.IssuerRequest{}, ErrRequestNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*issuerRequestRepository.SetRequestStatus").Msg("error updating issuer request")
		return models.IssuerRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// FindRequestByAddress returns the request filed by the university wallet.
func (r *issuerRequestRepository) FindRequestByAddress(ctx context.Context, address string) (models.IssuerRequest, error) {
	query, args, err := buildSelectIssuerRequestByAddressQuery(address)
	if err != nil {
		return models.IssuerRequest{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.IssuerRequest
	err = r.db.withRetry(ctx, func() (err error) {
		found, err = scanIssuerRequest(r.db.conn(ctx).QueryRowContext(ctx, query, args...))
		return err
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.IssuerRequest{}, ErrRequestNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*issuerRequestRepository.FindRequestByAddress").Msg("error selecting issuer request")
		return models.IssuerRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// CountByStatus returns the number of requests per status. Statuses with no
// requests are absent from the map.
func (r *issuerRequestRepository) CountByStatus(ctx context.Context) (map[models.RequestStatus]int64, error) {
	query, args, err := buildCountIssuerRequestsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var counts map[models.RequestStatus]int64
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		counts = make(map[models.RequestStatus]int64)
		for rows.Next() {
			var (
				status string
				n      int64
			)
			if err = rows.Scan(&status, &n); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			counts[models.RequestStatus(status)] = n
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return counts, nil
}
