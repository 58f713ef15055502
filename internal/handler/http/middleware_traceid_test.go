package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestWithTraceID_ReusesHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rec, captured := executeWithTraceID(h, "my-custom-trace-id")

	require.NotNil(t, captured)
	assert.Equal(t, "my-custom-trace-id", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	rec, _ := executeWithTraceID(h, "")

	_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
	assert.NoError(t, err)
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	base := logger.Nop()
	base.Logger = base.Output(&buf).Level(0)
	h := &Handler{logger: base}

	executeWithTraceID(h, "trace-42")

	assert.Contains(t, buf.String(), `"trace_id":"trace-42"`)
}
