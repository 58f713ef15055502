// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/crypto"
	"github.com/MKhiriev/go-cred-keeper/internal/envelope"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/mock"
	"github.com/MKhiriev/go-cred-keeper/internal/vault"
	"github.com/MKhiriev/go-cred-keeper/models"
)

const (
	testWallet = "0x1111111111111111111111111111111111111111"
	testHash   = "3f1d2a1c06a8b0b1c1e6b2b0c0d7e3e0f9a8b7c6d5e4f3a2b1c0d9e8f7a6b5c4"
	testCID    = "bafkreigh2akiscaildcqabsyg3dfr6chu3fgpregiymsck7e7aqa4s52zy"
)

type fixedToken string

func (f fixedToken) Token(context.Context) (string, error) { return string(f), nil }

type failingToken struct{}

func (failingToken) Token(context.Context) (string, error) { return "", errors.New("vault closed") }

func newTestCipher(t *testing.T) envelope.Cipher {
	t.Helper()
	c, err := envelope.New(envelope.ModeGCM, "adapter-test-key", crypto.NewKeyChain())
	require.NoError(t, err)
	return c
}

// apiServer decodes the envelope of every request, hands the payload to
// handle and wraps whatever handle returns.
type apiServer struct {
	t      *testing.T
	cipher envelope.Cipher
	calls  atomic.Int32
}

func (s *apiServer) serve(handle func(r *http.Request, body json.RawMessage) (int, any)) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)

		var body json.RawMessage
		var env models.Envelope
		if err := json.NewDecoder(r.Body).Decode(&env); err == nil && env.Content != "" {
			raw, err := s.cipher.UnwrapBytes(env)
			require.NoError(s.t, err)
			body = raw
		}

		status, reply := handle(r, body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if reply == nil {
			return
		}
		out, err := s.cipher.Wrap(reply)
		require.NoError(s.t, err)
		_ = json.NewEncoder(w).Encode(out)
	}))
}

func newTestAdapter(t *testing.T, serverURL string, cipher envelope.Cipher, tokens TokenSource, retries int) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Adapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
		RetryCount:     retries,
	}, cipher, tokens, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_Address(t *testing.T) {
	cipher := newTestCipher(t)
	tests := []struct {
		name    string
		address string
		want    string
		wantErr bool
	}{
		{name: "scheme added", address: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", address: "https://api.example.org/", want: "https://api.example.org"},
		{name: "empty", address: "  ", wantErr: true},
		{name: "no host", address: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: tt.address}, cipher, nil, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want+"/ipfs/"+testCID, a.GatewayURL(testCID))
		})
	}
}

func TestRegister_Success(t *testing.T) {
	cipher := newTestCipher(t)
	api := &apiServer{t: t, cipher: cipher}
	srv := api.serve(func(r *http.Request, body json.RawMessage) (int, any) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.RegisterRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, models.RoleUniversity, req.Role)
		assert.Equal(t, "Springfield University", req.UniversityName)

		return http.StatusCreated, models.RegisterResponse{
			Status:   true,
			Account:  &models.NewAccount{Address: testWallet, PrivateKey: "0xkey"},
			Mnemonic: "abandon about",
		}
	})
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, cipher, fixedToken(""), 0)
	got, err := a.Register(context.Background(), models.RegisterRequest{Role: models.RoleUniversity, UniversityName: "Springfield University"})

	require.NoError(t, err)
	require.NotNil(t, got.Account)
	assert.Equal(t, testWallet, got.Account.Address)
	assert.Equal(t, "abandon about", got.Mnemonic)
}

func TestLogin_Success(t *testing.T) {
	cipher := newTestCipher(t)
	api := &apiServer{t: t, cipher: cipher}
	srv := api.serve(func(r *http.Request, body json.RawMessage) (int, any) {
		assert.Equal(t, "/api/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, testWallet, req.WalletAddress)

		return http.StatusOK, models.LoginResponse{Status: true, Token: "signed", Role: models.RoleStudent}
	})
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, cipher, nil, 0)
	got, err := a.Login(context.Background(), testWallet)

	require.NoError(t, err)
	assert.Equal(t, "signed", got.Token)
	assert.Equal(t, models.RoleStudent, got.Role)
}

func TestLogin_NotFoundCarriesServerMessage(t *testing.T) {
	cipher := newTestCipher(t)
	api := &apiServer{t: t, cipher: cipher}
	srv := api.serve(func(r *http.Request, body json.RawMessage) (int, any) {
		return http.StatusNotFound, models.StatusResponse{Status: false, Error: "account not found"}
	})
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, cipher, nil, 3)
	_, err := a.Login(context.Background(), testWallet)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "account not found", ServerMessage(err))

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.StatusCode)
	assert.Equal(t, "login", reqErr.Op)
	assert.EqualValues(t, 1, api.calls.Load())
}

func TestRecover_Success(t *testing.T) {
	cipher := newTestCipher(t)
	api := &apiServer{t: t, cipher: cipher}
	srv := api.serve(func(r *http.Request, body json.RawMessage) (int, any) {
		var req models.RecoverRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "one two three", req.Mnemonic)
		return http.StatusOK, models.RecoverResponse{Status: true, Account: &models.NewAccount{Address: testWallet}}
	})
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, cipher, nil, 0)
	got, err := a.Recover(context.Background(), "one two three")

	require.NoError(t, err)
	assert.Equal(t, testWallet, got.Account.Address)
}

func TestIssueCredential_AttachesSessionToken(t *testing.T) {
	cipher := newTestCipher(t)
	api := &apiServer{t: t, cipher: cipher}
	srv := api.serve(func(r *http.Request, body json.RawMessage) (int, any) {
		assert.Equal(t, "/api/issueCredenctials", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		var req models.IssueRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, testHash, req.CredentialHash)
		return http.StatusCreated, models.IssueResponse{Status: true, CID: testCID}
	})
	defer srv.Close()

	session := vault.NewSession(vault.NewMemoryKV())
	require.NoError(t, session.Store(context.Background(), "session-token", models.RoleUniversity, testWallet))

	a := newTestAdapter(t, srv.URL, cipher, session, 0)
	got, err := a.IssueCredential(context.Background(), models.IssueRequest{Student: testWallet, CredentialHash: testHash, CredentialFile: "data:,x"})

	require.NoError(t, err)
	assert.Equal(t, testCID, got.CID)
}

func TestIssueCredential_NotRetried(t *testing.T) {
	cipher := newTestCipher(t)
	api := &apiServer{t: t, cipher: cipher}
	srv := api.serve(func(r *http.Request, body json.RawMessage) (int, any) {
		return http.StatusInternalServerError, models.StatusResponse{Error: "Internal Server Error"}
	})
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, cipher, fixedToken("t"), 3)
	_, err := a.IssueCredential(context.Background(), models.IssueRequest{})

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.EqualValues(t, 1, api.calls.Load())
}

func TestListCredentials_RetriedOnServerError(t *testing.T) {
	cipher := newTestCipher(t)
	api := &apiServer{t: t, cipher: cipher}
	srv := api.serve(func(r *http.Request, body json.RawMessage) (int, any) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/getAllCrentials", r.URL.Path)
		if api.calls.Load() < 3 {
			return http.StatusBadGateway, nil
		}
		return http.StatusOK, models.CredentialsResponse{
			Status:      true,
			Credentials: []models.Credential{{Hash: testHash, CID: testCID}},
		}
	})
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, cipher, fixedToken("t"), 3)
	got, err := a.ListCredentials(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, testHash, got[0].Hash)
	assert.EqualValues(t, 3, api.calls.Load())
}

func TestVerifyCredential_RetriedOnServerError(t *testing.T) {
	cipher := newTestCipher(t)
	api := &apiServer{t: t, cipher: cipher}
	srv := api.serve(func(r *http.Request, body json.RawMessage) (int, any) {
		if api.calls.Load() == 1 {
			return http.StatusInternalServerError, nil
		}
		var req models.HashRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, testHash, req.CredentialHash)
		return http.StatusOK, models.VerifyResponse{Status: true, Valid: true}
	})
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, cipher, nil, 2)
	got, err := a.VerifyCredential(context.Background(), testHash)

	require.NoError(t, err)
	assert.True(t, got.Valid)
	assert.EqualValues(t, 2, api.calls.Load())
}

func TestRevokeCredential_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "forbidden", status: http.StatusForbidden, want: ErrForbidden},
		{name: "conflict", status: http.StatusConflict, want: ErrConflict},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrUnauthorized},
		{name: "teapot", status: http.StatusTeapot, want: ErrUnexpectedStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cipher := newTestCipher(t)
			api := &apiServer{t: t, cipher: cipher}
			srv := api.serve(func(r *http.Request, body json.RawMessage) (int, any) {
				return tt.status, models.StatusResponse{Error: tt.name}
			})
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, cipher, fixedToken("t"), 0)
			err := a.RevokeCredential(context.Background(), testHash)

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.name, ServerMessage(err))
		})
	}
}

func TestRequestsApproveReject(t *testing.T) {
	cipher := newTestCipher(t)
	api := &apiServer{t: t, cipher: cipher}
	var decided []string
	srv := api.serve(func(r *http.Request, body json.RawMessage) (int, any) {
		switch r.URL.Path {
		case "/api/requests":
			return http.StatusOK, models.RequestsResponse{Status: true, Requests: []models.IssuerRequest{
				{UniversityName: "A", Status: models.RequestPending},
			}}
		case "/api/approve", "/api/reject":
			var req models.UniversityRequest
			require.NoError(t, json.Unmarshal(body, &req))
			decided = append(decided, r.URL.Path+":"+req.UniversityName)
			return http.StatusOK, models.StatusResponse{Status: true}
		}
		return http.StatusNotFound, nil
	})
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, cipher, fixedToken("gov"), 0)
	ctx := context.Background()

	reqs, err := a.ListRequests(ctx)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	require.NoError(t, a.Approve(ctx, "A"))
	require.NoError(t, a.Reject(ctx, "B"))
	assert.Equal(t, []string{"/api/approve:A", "/api/reject:B"}, decided)
}

func TestFetchFile(t *testing.T) {
	cipher := newTestCipher(t)
	api := &apiServer{t: t, cipher: cipher}
	srv := api.serve(func(r *http.Request, body json.RawMessage) (int, any) {
		assert.Equal(t, "/api/files/"+testCID, r.URL.Path)
		return http.StatusOK, models.FileResponse{Status: true, CID: testCID, File: "data:text/plain;base64,aGk="}
	})
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, cipher, nil, 0)
	got, err := a.FetchFile(context.Background(), testCID)

	require.NoError(t, err)
	assert.Equal(t, "data:text/plain;base64,aGk=", got)
}

func TestCall_PlainMiddlewareRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid encrypted data"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, newTestCipher(t), nil, 0)
	_, err := a.Login(context.Background(), testWallet)

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Invalid encrypted data", ServerMessage(err))
}

func TestCall_UndecryptableReply(t *testing.T) {
	other, err := envelope.New(envelope.ModeGCM, "another-key", crypto.NewKeyChain())
	require.NoError(t, err)

	api := &apiServer{t: t, cipher: other}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env, err := api.cipher.Wrap(models.LoginResponse{Status: true})
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(env)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, newTestCipher(t), nil, 0)
	_, err = a.Login(context.Background(), testWallet)

	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.ErrorIs(t, err, envelope.ErrDecrypt)
}

func TestCall_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, newTestCipher(t), nil, 0)
	_, err := a.Login(context.Background(), testWallet)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Zero(t, reqErr.StatusCode)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestCall_TokenSourceError(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1", newTestCipher(t), failingToken{}, 0)
	_, err := a.ListCredentials(context.Background())

	assert.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "vault closed")
}

func TestCall_WrapFailureSendsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	cipher := mock.NewMockCipher(ctrl)
	cipher.EXPECT().Wrap(gomock.Any()).Return(models.Envelope{}, errors.New("bad key"))

	api := &apiServer{t: t, cipher: newTestCipher(t)}
	srv := api.serve(func(*http.Request, json.RawMessage) (int, any) { return http.StatusOK, nil })
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, cipher, nil, 0)
	err := a.Approve(context.Background(), "MIT")

	assert.ErrorContains(t, err, "bad key")
	assert.NotErrorIs(t, err, ErrTransport)
	assert.Zero(t, api.calls.Load())
}
