// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// maxBodySize bounds request bodies; documents travel inline as data URLs.
const maxBodySize = 32 << 20

// withEnvelope replaces a request body of the form {"content": "..."} with
// the decrypted payload. Bodies without a content field pass through
// unmodified. A content field that cannot be opened ends the request with
// 400 and a generic message; the cipher error is only logged.
func (h *Handler) withEnvelope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
		if tooLarge := new(http.MaxBytesError); errors.As(err, &tooLarge) {
			log.Warn().Err(err).Msg("request body is too large")
			utils.WriteJSON(w, models.ErrorResponse{Message: "request body is too large"}, http.StatusRequestEntityTooLarge)
			return
		}
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			utils.WriteJSON(w, models.ErrorResponse{Message: "failed to read request body"}, http.StatusBadRequest)
			return
		}

		var (
			fields  map[string]json.RawMessage
			content json.RawMessage
			found   bool
		)
		if json.Unmarshal(body, &fields) == nil {
			content, found = fields["content"]
		}

		if !found {
			restoreBody(r, body)
			next.ServeHTTP(w, r)
			return
		}

		var env models.Envelope
		if err := json.Unmarshal(content, &env.Content); err != nil {
			log.Warn().Err(err).Msg("envelope content is not a string")
			utils.WriteJSON(w, models.ErrorResponse{Message: ErrInvalidEncryptedData.Error()}, http.StatusBadRequest)
			return
		}

		payload, err := h.cipher.UnwrapBytes(env)
		if err != nil {
			log.Warn().Err(err).Msg("failed to open envelope")
			utils.WriteJSON(w, models.ErrorResponse{Message: ErrInvalidEncryptedData.Error()}, http.StatusBadRequest)
			return
		}

		restoreBody(r, payload)
		next.ServeHTTP(w, r)
	})
}

func restoreBody(r *http.Request, body []byte) {
	r.Body = io.NopCloser(bytes.NewReader(body))
	r.ContentLength = int64(len(body))
	r.Header.Set("Content-Length", strconv.Itoa(len(body)))
}
