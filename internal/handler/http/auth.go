package http

import (
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := h.decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	wallet, err := h.services.AuthService.Register(ctx, req.Role, req.Name())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("address", wallet.Address).Str("role", req.Role.String()).Msg("account registered")

	h.respond(w, r, models.RegisterResponse{
		Status:   true,
		Account:  &models.NewAccount{Address: wallet.Address, PrivateKey: wallet.PrivateKey},
		Mnemonic: wallet.Mnemonic,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := h.decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Login(ctx, req.WalletAddress)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		h.respondError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	h.respond(w, r, models.LoginResponse{
		Status: true,
		Token:  token.SignedString,
		Role:   account.Role,
	}, http.StatusOK)
}

// recoverAccount rebuilds address and private key from a mnemonic.
func (h *Handler) recoverAccount(w http.ResponseWriter, r *http.Request) {
	var req models.RecoverRequest
	if err := h.decode(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	wallet, err := h.services.AuthService.Recover(r.Context(), req.Mnemonic)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respond(w, r, models.RecoverResponse{
		Status:  true,
		Account: &models.NewAccount{Address: wallet.Address, PrivateKey: wallet.PrivateKey},
	}, http.StatusOK)
}
