package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-cred-keeper/models"
)

type retryableKey struct{}

// readOnly marks ctx so that a failed request may be retried.
func readOnly(ctx context.Context) context.Context {
	return context.WithValue(ctx, retryableKey{}, true)
}

// retryCondition retries read-only requests on transport errors and 5xx
// replies. State-changing requests are never retried.
func retryCondition(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil {
		return false
	}
	if retryable, _ := resp.Request.Context().Value(retryableKey{}).(bool); !retryable {
		return false
	}
	return err != nil || resp.StatusCode() >= http.StatusInternalServerError || resp.StatusCode() == http.StatusTooManyRequests
}

// call sends payload (wrapped, when non-nil) to path and unwraps the reply
// into result (when non-nil).
func (h *httpServerAdapter) call(ctx context.Context, op, method, path string, payload, result any) error {
	req, err := h.request(ctx)
	if err != nil {
		return &RequestError{Op: op, Err: fmt.Errorf("%w: %w", ErrTransport, err)}
	}

	if payload != nil {
		env, err := h.cipher.Wrap(payload)
		if err != nil {
			return &RequestError{Op: op, Err: fmt.Errorf("wrap request: %w", err)}
		}
		req.SetBody(env)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Err(err).Str("op", op).Msg("request failed")
		return &RequestError{Op: op, Err: fmt.Errorf("%w: %w", ErrTransport, err)}
	}
	if err = mapHTTPError(op, resp, h.cipher); err != nil {
		h.logger.Debug().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("request rejected")
		return err
	}

	if result == nil {
		return nil
	}

	var env models.Envelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return &RequestError{Op: op, StatusCode: resp.StatusCode(), Err: fmt.Errorf("%w: %w", ErrInvalidResponse, err)}
	}
	if err = h.cipher.Unwrap(env, result); err != nil {
		return &RequestError{Op: op, StatusCode: resp.StatusCode(), Err: fmt.Errorf("%w: %w", ErrInvalidResponse, err)}
	}

	return nil
}

// request builds a resty request carrying the session token, if any.
func (h *httpServerAdapter) request(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)
	if h.tokens == nil {
		return req, nil
	}

	token, err := h.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}
	if token != "" {
		req.SetAuthToken(token)
	}
	return req, nil
}
