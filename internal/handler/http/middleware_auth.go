package http

import (
	"errors"
	"net/http"
	"slices"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the wallet address and
// role of the caller in the request context (see [utils.WithIdentity]).
// Any failure ends the request with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			unauthorized(w, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				unauthorized(w, service.ErrTokenIsExpired)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				unauthorized(w, service.ErrInvalidToken)
			}
			return
		}

		wallet, err := token.GetWalletAddress()
		if err != nil {
			log.Err(err).Msg("token without wallet address")
			unauthorized(w, service.ErrInvalidToken)
			return
		}
		role, err := token.GetRole()
		if err != nil {
			log.Err(err).Msg("token without valid role")
			unauthorized(w, service.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, wallet, role)))
	})
}

// requireRole lets the request through only when the authenticated role
// is one of roles. It must run after [Handler.auth].
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || !slices.Contains(roles, role) {
				logger.FromRequest(r).Warn().Str("role", role.String()).Str("uri", r.RequestURI).Msg("role is not allowed")
				utils.WriteJSON(w, models.ErrorResponse{Message: ErrForbidden.Error()}, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.WriteJSON(w, models.ErrorResponse{Message: err.Error()}, http.StatusUnauthorized)
}
