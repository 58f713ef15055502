// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// file returns the stored document of a credential as its data URL.
func (h *Handler) file(w http.ResponseWriter, r *http.Request) {
	cid := chi.URLParam(r, "cid")

	data, err := h.services.CredentialService.File(r.Context(), cid)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, r, models.FileResponse{Status: true, CID: cid, File: string(data)}, http.StatusOK)
}

// gateway serves a stored document the way an IPFS gateway would: the
// decoded bytes with their own media type. Content behind a CID never
// changes, so it may be cached forever.
func (h *Handler) gateway(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	cid := chi.URLParam(r, "cid")

	data, err := h.services.CredentialService.File(r.Context(), cid)
	if err != nil {
		status, message := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Str("cid", cid).Msg("error reading file")
		}
		http.Error(w, message, status)
		return
	}

	mediaType, body, err := utils.ParseDataURL(string(data))
	if err != nil {
		log.Debug().Err(err).Str("cid", cid).Msg("stored file is not a data URL, serving raw bytes")
		mediaType, body = "application/octet-stream", data
	}

	w.Header().Set("Content-Type", mediaType)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Etag", `"`+cid+`"`)
	w.WriteHeader(http.StatusOK)

	if _, err = w.Write(body); err != nil {
		log.Err(err).Str("cid", cid).Msg("error writing file")
	}
}
