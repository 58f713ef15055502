package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/models"
)

func TestRegister(t *testing.T) {
	wallet := models.Wallet{Address: testStudent, PrivateKey: "0xkey", Mnemonic: "word word word"}

	tests := []struct {
		name       string
		payload    any
		setup      func(e *testEnv)
		wantStatus int
		wantResp   models.RegisterResponse
	}{
		{
			name:    "student",
			payload: models.RegisterRequest{Role: models.RoleStudent, StudentName: "Alice"},
			setup: func(e *testEnv) {
				e.auth.EXPECT().Register(gomock.Any(), models.RoleStudent, "Alice").Return(wallet, nil)
			},
			wantStatus: http.StatusOK,
			wantResp: models.RegisterResponse{
				Status:   true,
				Account:  &models.NewAccount{Address: testStudent, PrivateKey: "0xkey"},
				Mnemonic: "word word word",
			},
		},
		{
			name:    "university",
			payload: models.RegisterRequest{Role: models.RoleUniversity, UniversityName: "MIT", StudentName: "ignored"},
			setup: func(e *testEnv) {
				e.auth.EXPECT().Register(gomock.Any(), models.RoleUniversity, "MIT").Return(wallet, nil)
			},
			wantStatus: http.StatusOK,
			wantResp: models.RegisterResponse{
				Status:   true,
				Account:  &models.NewAccount{Address: testStudent, PrivateKey: "0xkey"},
				Mnemonic: "word word word",
			},
		},
		{
			name:    "invalid role",
			payload: models.RegisterRequest{Role: "Admin"},
			setup: func(e *testEnv) {
				e.auth.EXPECT().Register(gomock.Any(), models.Role("Admin"), "").Return(models.Wallet{}, service.ErrInvalidRole)
			},
			wantStatus: http.StatusBadRequest,
			wantResp:   models.RegisterResponse{Error: service.ErrInvalidRole.Error()},
		},
		{
			name:       "missing role",
			payload:    map[string]string{"studentName": "Alice"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "university name taken",
			payload: models.RegisterRequest{Role: models.RoleUniversity, UniversityName: "MIT"},
			setup: func(e *testEnv) {
				e.auth.EXPECT().Register(gomock.Any(), models.RoleUniversity, "MIT").Return(models.Wallet{}, service.ErrUniversityExists)
			},
			wantStatus: http.StatusConflict,
			wantResp:   models.RegisterResponse{Error: service.ErrUniversityExists.Error()},
		},
		{
			name:    "internal error is not exposed",
			payload: models.RegisterRequest{Role: models.RoleStudent},
			setup: func(e *testEnv) {
				e.auth.EXPECT().Register(gomock.Any(), models.RoleStudent, "").Return(models.Wallet{}, errors.New("pq: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantResp:   models.RegisterResponse{Error: http.StatusText(http.StatusInternalServerError)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.setup != nil {
				tt.setup(env)
			}

			rec := env.do(t, http.MethodPost, "/api/register", tt.payload, false)
			require.Equal(t, tt.wantStatus, rec.Code)

			var resp models.RegisterResponse
			env.open(t, rec, &resp)
			if tt.wantResp.Status || tt.wantResp.Error != "" {
				assert.Equal(t, tt.wantResp, resp)
			} else {
				assert.False(t, resp.Status)
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)
		account := models.Account{Address: testUniversity, Role: models.RoleUniversity}

		gomock.InOrder(
			env.auth.EXPECT().Login(gomock.Any(), testUniversity).Return(account, nil),
			env.auth.EXPECT().CreateToken(gomock.Any(), account).Return(models.Token{SignedString: "signed"}, nil),
		)

		rec := env.do(t, http.MethodPost, "/api/login", models.LoginRequest{WalletAddress: testUniversity}, false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))

		var resp models.LoginResponse
		env.open(t, rec, &resp)
		assert.Equal(t, models.LoginResponse{Status: true, Token: "signed", Role: models.RoleUniversity}, resp)
	})

	t.Run("unknown account", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.EXPECT().Login(gomock.Any(), testStudent).Return(models.Account{}, service.ErrAccountNotFound)

		rec := env.do(t, http.MethodPost, "/api/login", models.LoginRequest{WalletAddress: testStudent}, false)
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp models.LoginResponse
		env.open(t, rec, &resp)
		assert.False(t, resp.Status)
		assert.Equal(t, service.ErrAccountNotFound.Error(), resp.Error)
	})

	t.Run("malformed address", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.EXPECT().Login(gomock.Any(), "nope").Return(models.Account{}, service.ErrInvalidDataProvided)

		rec := env.do(t, http.MethodPost, "/api/login", models.LoginRequest{WalletAddress: "nope"}, false)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty address fails validation", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.do(t, http.MethodPost, "/api/login", models.LoginRequest{}, false)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.LoginResponse
		env.open(t, rec, &resp)
		assert.Contains(t, resp.Error, "invalid payload")
	})

	t.Run("plain body is accepted", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.EXPECT().Login(gomock.Any(), testGov).Return(models.Account{Address: testGov, Role: models.RoleGov}, nil)
		env.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{SignedString: "signed"}, nil)

		rec := env.doPlain(t, http.MethodPost, "/api/login", `{"walletAddress":"`+testGov+`"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRecover(t *testing.T) {
	env := newTestEnv(t)
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	env.auth.EXPECT().Recover(gomock.Any(), mnemonic).Return(models.Wallet{Address: testStudent, PrivateKey: "0xkey"}, nil)
	env.auth.EXPECT().Recover(gomock.Any(), "not a mnemonic").Return(models.Wallet{}, service.ErrInvalidMnemonic)

	rec := env.do(t, http.MethodPost, "/api/recover", models.RecoverRequest{Mnemonic: mnemonic}, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RecoverResponse
	env.open(t, rec, &resp)
	assert.True(t, resp.Status)
	assert.Equal(t, &models.NewAccount{Address: testStudent, PrivateKey: "0xkey"}, resp.Account)

	rec = env.do(t, http.MethodPost, "/api/recover", models.RecoverRequest{Mnemonic: "not a mnemonic"}, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
