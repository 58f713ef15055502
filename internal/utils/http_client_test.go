package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:3000", NormalizeBaseURL("localhost:3000"))
	assert.Equal(t, "https://api.example.com", NormalizeBaseURL("https://api.example.com/"))
	assert.Equal(t, "", NormalizeBaseURL("  "))
}

func TestNewHTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "/api/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	require.NotNil(t, c.Client)
	assert.Equal(t, time.Second, c.GetClient().Timeout)

	resp, err := c.R().Get("/api/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, resp.String())
}
