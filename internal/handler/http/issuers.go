// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/models"
)

func (h *Handler) listRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.services.IssuerService.ListRequests(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if requests == nil {
		requests = []models.IssuerRequest{}
	}

	h.respond(w, r, models.RequestsResponse{Status: true, Requests: requests}, http.StatusOK)
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, service.IssuerService.Approve, "University approved")
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, service.IssuerService.Reject, "University rejected")
}

type decision func(s service.IssuerService, ctx context.Context, actor, universityName string) (models.IssuerRequest, error)

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, apply decision, message string) {
	actor, _, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req models.UniversityRequest
	if err = h.decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	if _, err = apply(h.services.IssuerService, r.Context(), actor, req.UniversityName); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, r, models.StatusResponse{Status: true, Message: message}, http.StatusOK)
}
