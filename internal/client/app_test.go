package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/internal/mock"
	"github.com/MKhiriev/go-cred-keeper/internal/service"
	"github.com/MKhiriev/go-cred-keeper/internal/vault"
	"github.com/MKhiriev/go-cred-keeper/models"
)

type stubUI struct {
	err   error
	calls int
}

func (s *stubUI) Run(context.Context) error {
	s.calls++
	return s.err
}

func newTestServices(t *testing.T) (*service.ClientServices, *mock.MockClientAuthService, *vault.Session) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	session := vault.NewSession(vault.NewMemoryKV())
	return &service.ClientServices{AuthService: auth, Session: session}, auth, session
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, logger.Nop())
	assert.Error(t, err)

	services, _, _ := newTestServices(t)
	_, err = NewApp(services, nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run_ClearsSessionAroundUI(t *testing.T) {
	ctx := context.Background()
	services, auth, session := newTestServices(t)
	require.NoError(t, session.Store(ctx, "stale-token", models.RoleStudent, "0xABC"))

	ui := &stubUI{}
	gomock.InOrder(
		auth.EXPECT().Logout(gomock.Any()).Return(nil),
		auth.EXPECT().Logout(gomock.Any()).Return(nil),
	)

	app, err := NewApp(services, ui, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, app.Run(ctx))
	assert.Equal(t, 1, ui.calls)
}

func TestApp_Run_StaleSessionNotCleared(t *testing.T) {
	services, auth, _ := newTestServices(t)
	ui := &stubUI{}
	auth.EXPECT().Logout(gomock.Any()).Return(errors.New("vault locked"))

	app, err := NewApp(services, ui, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorContains(t, err, "clear stale session")
	assert.Zero(t, ui.calls)
}

func TestApp_Run_ReturnsUIError(t *testing.T) {
	services, auth, _ := newTestServices(t)
	ui := &stubUI{err: errors.New("user quit")}
	auth.EXPECT().Logout(gomock.Any()).Return(nil).Times(2)

	app, err := NewApp(services, ui, logger.Nop())
	require.NoError(t, err)
	assert.EqualError(t, app.Run(context.Background()), "user quit")
}
