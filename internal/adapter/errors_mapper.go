package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-cred-keeper/internal/envelope"
	"github.com/MKhiriev/go-cred-keeper/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(op string, resp *resty.Response, cipher envelope.Cipher) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	sentinel, ok := statusErrors[resp.StatusCode()]
	if !ok {
		sentinel = ErrUnexpectedStatus
	}

	return &RequestError{
		Op:         op,
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp.Body(), cipher),
		Err:        sentinel,
	}
}

// errorMessage extracts the server's error text. Handler errors arrive as
// an enveloped status reply; middleware rejections arrive as a plain
// {"message": ...} object.
func errorMessage(body []byte, cipher envelope.Cipher) string {
	var env models.Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Content != "" && cipher != nil {
		var status models.StatusResponse
		if err = cipher.Unwrap(env, &status); err == nil {
			return status.Error
		}
	}

	var plain models.ErrorResponse
	if err := json.Unmarshal(body, &plain); err == nil && plain.Message != "" {
		return plain.Message
	}

	return strings.TrimSpace(string(body))
}
