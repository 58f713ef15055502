package vault

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cred-keeper/internal/mock"
	"github.com/MKhiriev/go-cred-keeper/models"
)

func TestSession(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	s := NewSession(kv)

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Store(ctx, "jwt-token", models.RoleUniversity, "0xABC"))

	token, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	role, err := s.Role(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUniversity, role)

	wallet, err := s.Wallet(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0xABC", wallet)

	raw, err := kv.Get(ctx, "jwt")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", raw)

	require.NoError(t, s.Clear(ctx))
	token, err = s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

type brokenKV struct{ KV }

func (brokenKV) Get(context.Context, string) (string, error) { return "", errors.New("io") }

func TestSession_PropagatesReadErrors(t *testing.T) {
	_, err := NewSession(brokenKV{NewMemoryKV()}).Token(context.Background())
	assert.Error(t, err)
}

func TestSession_ClearTriesEverySlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKV(ctrl)

	kv.EXPECT().Delete(gomock.Any(), "jwt").Return(errors.New("locked"))
	kv.EXPECT().Delete(gomock.Any(), "role").Return(nil)
	kv.EXPECT().Delete(gomock.Any(), "wallet").Return(nil)

	err := NewSession(kv).Clear(context.Background())
	assert.ErrorContains(t, err, "locked")
}
