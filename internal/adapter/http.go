package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/envelope"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/utils"
	"github.com/MKhiriev/go-cred-keeper/models"
)

const (
	routeRegister    = "/api/register"
	routeLogin       = "/api/login"
	routeRecover     = "/api/recover"
	routeIssue       = "/api/issueCredenctials"
	routeCredentials = "/api/getAllCrentials"
	routeVerify      = "/api/verifyCredentials"
	routeRevoke      = "/api/revokeCredential"
	routeRequests    = "/api/requests"
	routeApprove     = "/api/approve"
	routeReject      = "/api/reject"
	routeFile        = "/api/files/"
	routeGateway     = "/ipfs/"

	retryWait    = 200 * time.Millisecond
	retryMaxWait = 2 * time.Second
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	cipher  envelope.Cipher
	tokens  TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// Every body is wrapped with cipher and tokens supplies the bearer token of
// the current session. Read-only calls are retried up to
// adapterCfg.RetryCount times.
//
// Returns an error if adapterCfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, cipher envelope.Cipher, tokens TokenSource, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.
		SetRetryCount(max(adapterCfg.RetryCount, 0)).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(retryMaxWait).
		AddRetryCondition(retryCondition)

	return &httpServerAdapter{
		client:  client,
		baseURL: baseURL,
		cipher:  cipher,
		tokens:  tokens,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = utils.NormalizeBaseURL(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var resp models.RegisterResponse
	err := h.call(ctx, "register", http.MethodPost, routeRegister, req, &resp)
	return resp, err
}

func (h *httpServerAdapter) Login(ctx context.Context, walletAddress string) (models.LoginResponse, error) {
	var resp models.LoginResponse
	err := h.call(ctx, "login", http.MethodPost, routeLogin, models.LoginRequest{WalletAddress: walletAddress}, &resp)
	return resp, err
}

func (h *httpServerAdapter) Recover(ctx context.Context, mnemonic string) (models.RecoverResponse, error) {
	var resp models.RecoverResponse
	err := h.call(ctx, "recover", http.MethodPost, routeRecover, models.RecoverRequest{Mnemonic: mnemonic}, &resp)
	return resp, err
}

func (h *httpServerAdapter) IssueCredential(ctx context.Context, req models.IssueRequest) (models.IssueResponse, error) {
	var resp models.IssueResponse
	err := h.call(ctx, "issue credential", http.MethodPost, routeIssue, req, &resp)
	return resp, err
}

func (h *httpServerAdapter) ListCredentials(ctx context.Context) ([]models.Credential, error) {
	var resp models.CredentialsResponse
	if err := h.call(readOnly(ctx), "list credentials", http.MethodGet, routeCredentials, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Credentials, nil
}

// VerifyCredential implements [ServerAdapter]. It is a POST but changes
// nothing, so it is retried like the GET routes.
func (h *httpServerAdapter) VerifyCredential(ctx context.Context, hash string) (models.VerifyResponse, error) {
	var resp models.VerifyResponse
	err := h.call(readOnly(ctx), "verify credential", http.MethodPost, routeVerify, models.HashRequest{CredentialHash: hash}, &resp)
	return resp, err
}

func (h *httpServerAdapter) RevokeCredential(ctx context.Context, hash string) error {
	var resp models.StatusResponse
	return h.call(ctx, "revoke credential", http.MethodPost, routeRevoke, models.HashRequest{CredentialHash: hash}, &resp)
}

func (h *httpServerAdapter) ListRequests(ctx context.Context) ([]models.IssuerRequest, error) {
	var resp models.RequestsResponse
	if err := h.call(readOnly(ctx), "list requests", http.MethodGet, routeRequests, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Requests, nil
}

func (h *httpServerAdapter) Approve(ctx context.Context, universityName string) error {
	var resp models.StatusResponse
	return h.call(ctx, "approve", http.MethodPost, routeApprove, models.UniversityRequest{UniversityName: universityName}, &resp)
}

func (h *httpServerAdapter) Reject(ctx context.Context, universityName string) error {
	var resp models.StatusResponse
	return h.call(ctx, "reject", http.MethodPost, routeReject, models.UniversityRequest{UniversityName: universityName}, &resp)
}

func (h *httpServerAdapter) FetchFile(ctx context.Context, cid string) (string, error) {
	var resp models.FileResponse
	if err := h.call(readOnly(ctx), "fetch file", http.MethodGet, routeFile+url.PathEscape(cid), nil, &resp); err != nil {
		return "", err
	}
	return resp.File, nil
}

func (h *httpServerAdapter) GatewayURL(cid string) string {
	return h.baseURL + routeGateway + url.PathEscape(cid)
}
