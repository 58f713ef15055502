package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/events"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/mock"
	"github.com/MKhiriev/go-cred-keeper/internal/store"
	"github.com/MKhiriev/go-cred-keeper/models"
)

const testGovAddress = "0x8042CCF709ABEf7af0B5Ca4d1b4655C6592EA08E"

type authMocks struct {
	tx       *mock.MockTransactor
	accounts *mock.MockAccountRepository
	requests *mock.MockIssuerRequestRepository
	wallets  *mock.MockWalletService
	events   *mock.MockPublisher
}

func newTestAuthSvc(t *testing.T) (AuthService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := authMocks{
		tx:       mock.NewMockTransactor(ctrl),
		accounts: mock.NewMockAccountRepository(ctrl),
		requests: mock.NewMockIssuerRequestRepository(ctrl),
		wallets:  mock.NewMockWalletService(ctrl),
		events:   mock.NewMockPublisher(ctrl),
	}
	storages := &store.Storages{Transactor: m.tx, Accounts: m.accounts, Requests: m.requests}
	cfg := config.App{
		GovAddress:    testGovAddress,
		TokenSignKey:  "sign-key",
		TokenIssuer:   "go-cred-keeper",
		TokenDuration: time.Hour,
	}

	return NewAuthService(storages, m.wallets, m.events, cfg, logger.Nop()), m
}

func runInTx(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

var testWallet = models.Wallet{Address: testAddress, PrivateKey: testPrivateKey, Mnemonic: testMnemonic}

func TestAuthService_Register_Student(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		m.wallets.EXPECT().NewWallet().Return(testWallet, nil),
		m.tx.EXPECT().InTx(ctx, gomock.Any()).DoAndReturn(runInTx),
		m.accounts.EXPECT().CreateAccount(ctx, models.Account{Address: testAddress, Role: models.RoleStudent}).
			Return(models.Account{Address: testAddress, Role: models.RoleStudent}, nil),
		m.events.EXPECT().Publish(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e events.Event) error {
			assert.Equal(t, events.AccountRegistered, e.Kind)
			assert.Equal(t, testAddress, e.Subject)
			return nil
		}),
	)

	w, err := svc.Register(ctx, models.RoleStudent, "")
	require.NoError(t, err)
	assert.Equal(t, testWallet, w)
}

func TestAuthService_Register_University(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.wallets.EXPECT().NewWallet().Return(testWallet, nil)
	m.tx.EXPECT().InTx(ctx, gomock.Any()).DoAndReturn(runInTx)
	m.accounts.EXPECT().CreateAccount(ctx, models.Account{Address: testAddress, Role: models.RoleUniversity, Name: "MIT"}).
		Return(models.Account{}, nil)
	m.requests.EXPECT().CreateRequest(ctx, models.IssuerRequest{UniversityName: "MIT", Address: testAddress, Status: models.RequestPending}).
		Return(models.IssuerRequest{}, nil)
	m.events.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	_, err := svc.Register(ctx, models.RoleUniversity, "  MIT ")
	require.NoError(t, err)
}

func TestAuthService_Register_UniversityNameTaken(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.wallets.EXPECT().NewWallet().Return(testWallet, nil)
	m.tx.EXPECT().InTx(ctx, gomock.Any()).DoAndReturn(runInTx)
	m.accounts.EXPECT().CreateAccount(ctx, gomock.Any()).Return(models.Account{}, nil)
	m.requests.EXPECT().CreateRequest(ctx, gomock.Any()).Return(models.IssuerRequest{}, store.ErrRequestExists)

	_, err := svc.Register(ctx, models.RoleUniversity, "MIT")
	assert.ErrorIs(t, err, ErrUniversityExists)
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RoleGov, "")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.Register(ctx, models.Role("Admin"), "x")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.Register(ctx, models.RoleUniversity, "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_PublishFailureIsNotFatal(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.wallets.EXPECT().NewWallet().Return(testWallet, nil)
	m.tx.EXPECT().InTx(ctx, gomock.Any()).DoAndReturn(runInTx)
	m.accounts.EXPECT().CreateAccount(ctx, gomock.Any()).Return(models.Account{}, nil)
	m.events.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("nats down"))

	_, err := svc.Register(ctx, models.RoleStudent, "Alice")
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	t.Run("gov address", func(t *testing.T) {
		account, err := svc.Login(ctx, "0x8042ccf709abef7af0b5ca4d1b4655c6592ea08e")
		require.NoError(t, err)
		assert.Equal(t, models.RoleGov, account.Role)
		assert.Equal(t, testGovAddress, account.Address)
	})

	t.Run("registered account", func(t *testing.T) {
		m.accounts.EXPECT().FindAccount(ctx, testAddress).
			Return(models.Account{Address: testAddress, Role: models.RoleStudent}, nil)

		account, err := svc.Login(ctx, testAddress)
		require.NoError(t, err)
		assert.Equal(t, models.RoleStudent, account.Role)
	})

	t.Run("unknown account", func(t *testing.T) {
		m.accounts.EXPECT().FindAccount(ctx, testAddress).Return(models.Account{}, store.ErrAccountNotFound)

		_, err := svc.Login(ctx, testAddress)
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("malformed address", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestAuthService_Recover(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.wallets.EXPECT().RecoverWallet(testMnemonic).Return(testWallet, nil)
	w, err := svc.Recover(ctx, testMnemonic)
	require.NoError(t, err)
	assert.Equal(t, testAddress, w.Address)

	m.wallets.EXPECT().RecoverWallet("bad").Return(models.Wallet{}, ErrInvalidMnemonic)
	_, err = svc.Recover(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidMnemonic)
}

func TestAuthService_Tokens(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Account{Address: testAddress, Role: models.RoleUniversity})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	address, err := parsed.GetWalletAddress()
	require.NoError(t, err)
	assert.Equal(t, testAddress, address)

	role, err := parsed.GetRole()
	require.NoError(t, err)
	assert.Equal(t, models.RoleUniversity, role)

	_, err = svc.ParseToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{}
	short := NewAuthService(storages, mock.NewMockWalletService(ctrl), events.NewNopPublisher(), config.App{
		TokenSignKey:  "sign-key",
		TokenIssuer:   "go-cred-keeper",
		TokenDuration: time.Millisecond,
	}, logger.Nop())

	token, err := short.CreateToken(context.Background(), models.Account{Address: testAddress, Role: models.RoleStudent})
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = short.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}
