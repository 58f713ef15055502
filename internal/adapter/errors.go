package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable request")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport is wrapped when the request never got a reply.
	ErrTransport = errors.New("transport failure")

	// ErrInvalidResponse is wrapped when a reply could not be unwrapped or
	// decoded.
	ErrInvalidResponse = errors.New("invalid response")
)

// RequestError describes a failed API call.
type RequestError struct {
	// Op names the call, e.g. "login".
	Op string

	// StatusCode is 0 when no reply was received.
	StatusCode int

	// Message is the error text sent by the server, if any.
	Message string

	Err error
}

func (e *RequestError) Error() string {
	switch {
	case e.StatusCode == 0:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message == "":
		return fmt.Sprintf("%s: http %d: %v", e.Op, e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("%s: http %d: %v: %s", e.Op, e.StatusCode, e.Err, e.Message)
	}
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ServerMessage returns the error text sent by the server, if err carries
// one.
func ServerMessage(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return ""
}
