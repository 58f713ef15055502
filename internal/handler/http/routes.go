package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-cred-keeper/models"
)

// Init builds the router. Route paths are part of the wire contract with
// existing portals and must not be renamed.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)

	// plain responses
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/ipfs/{cid}", h.gateway)
		if h.metrics != nil {
			r.Handle(h.metricsPath, h.metrics.Handler())
		}
	})

	// enveloped responses
	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.withEnvelope)

		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Post("/api/recover", h.recoverAccount)
		r.Post("/api/verifyCredentials", h.verifyCredential)
		r.Get("/api/files/{cid}", h.file)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.With(h.requireRole(models.RoleUniversity)).Post("/api/issueCredenctials", h.issueCredential)
			r.With(h.requireRole(models.RoleUniversity)).Post("/api/revokeCredential", h.revokeCredential)
			r.With(h.requireRole(models.RoleUniversity, models.RoleStudent)).Get("/api/getAllCrentials", h.listCredentials)

			r.With(h.requireRole(models.RoleGov)).Get("/api/requests", h.listRequests)
			r.With(h.requireRole(models.RoleGov)).Post("/api/approve", h.approve)
			r.With(h.requireRole(models.RoleGov)).Post("/api/reject", h.reject)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
