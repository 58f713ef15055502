package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidRole:         http.StatusBadRequest,
	service.ErrInvalidMnemonic:     http.StatusBadRequest,
	validators.ErrInvalidPayload:   http.StatusBadRequest,
	ErrInvalidJSON:                 http.StatusBadRequest,

	service.ErrAccountNotFound:  http.StatusNotFound,
	service.ErrAccountExists:    http.StatusConflict,
	service.ErrUniversityExists: http.StatusConflict,

	service.ErrInvalidToken:   http.StatusUnauthorized,
	service.ErrTokenIsExpired: http.StatusUnauthorized,

	service.ErrRequestNotFound: http.StatusNotFound,

	service.ErrNotApprovedIssuer:   http.StatusForbidden,
	service.ErrNotCredentialIssuer: http.StatusForbidden,
	service.ErrHolderNotStudent:    http.StatusUnprocessableEntity,
	service.ErrHashMismatch:        http.StatusUnprocessableEntity,
	service.ErrCredentialExists:    http.StatusConflict,
	service.ErrCredentialNotFound:  http.StatusNotFound,
	service.ErrAlreadyRevoked:      http.StatusConflict,
	service.ErrFileNotFound:        http.StatusNotFound,
}

// statusFromError returns the HTTP status for err and the message that may
// be shown to the caller. Unknown errors are internal and their text is
// never exposed.
func statusFromError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			var payloadErr *validators.PayloadError
			if errors.As(err, &payloadErr) {
				return status, payloadErr.Error()
			}
			return status, target.Error()
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
