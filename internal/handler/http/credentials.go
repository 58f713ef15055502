package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

var errNoIdentity = errors.New("no identity in request context")

func (h *Handler) issueCredential(w http.ResponseWriter, r *http.Request) {
	issuer, _, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req models.IssueRequest
	if err = h.decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	credential, err := h.services.CredentialService.Issue(r.Context(), issuer, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, r, models.IssueResponse{Status: true, CID: credential.CID}, http.StatusOK)
}

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	actor, role, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	credentials, err := h.services.CredentialService.List(r.Context(), actor, role)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if credentials == nil {
		credentials = []models.Credential{}
	}

	h.respond(w, r, models.CredentialsResponse{Status: true, Credentials: credentials}, http.StatusOK)
}

// verifyCredential is public: anyone holding a document may check it.
func (h *Handler) verifyCredential(w http.ResponseWriter, r *http.Request) {
	var req models.HashRequest
	if err := h.decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	verification, err := h.services.CredentialService.Verify(r.Context(), req.CredentialHash)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, r, models.VerifyResponse{
		Status:     true,
		Valid:      verification.Valid,
		Revoked:    verification.Revoked,
		Credential: verification.Credential,
	}, http.StatusOK)
}

func (h *Handler) revokeCredential(w http.ResponseWriter, r *http.Request) {
	issuer, _, err := identity(r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	var req models.HashRequest
	if err = h.decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	if _, err = h.services.CredentialService.Revoke(r.Context(), issuer, req.CredentialHash); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, r, models.StatusResponse{Status: true, Message: "Credential revoked"}, http.StatusOK)
}

// identity returns the caller stored by the auth middleware.
func identity(r *http.Request) (string, models.Role, error) {
	wallet, ok := utils.GetWalletFromContext(r.Context())
	if !ok {
		return "", "", errors.Join(service.ErrInvalidToken, errNoIdentity)
	}
	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		return "", "", errors.Join(service.ErrInvalidToken, errNoIdentity)
	}
	return wallet, role, nil
}
