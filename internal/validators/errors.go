package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidPayload wraps the first schema violation of a request.
	ErrInvalidPayload = errors.New("invalid payload")
)
