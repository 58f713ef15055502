// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// respond wraps payload into an envelope and writes it with status.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, payload any, status int) {
	env, err := h.cipher.Wrap(payload)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to wrap response")
		utils.WriteJSON(w, models.ErrorResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	if _, err = utils.WriteJSON(w, env, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

// respondError maps err to a status and writes a wrapped
// {status: false, error} payload.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	h.respond(w, r, models.StatusResponse{Status: false, Error: message}, status)
}

// decode reads the JSON body into v and validates it.
func (h *Handler) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if h.validator == nil {
		return nil
	}
	return h.validator.Validate(r.Context(), v)
}
