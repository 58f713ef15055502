package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap argon2 settings keep the suite fast
var testParams = Params{Time: 1, Memory: 1024, Threads: 1}

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	kc := NewKeyChain()

	s1, err := kc.GenerateSalt()
	require.NoError(t, err)
	s2, err := kc.GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, 16)
	assert.Len(t, s2, 16)
	assert.NotEqual(t, s1, s2)
}

func TestDeriveKey(t *testing.T) {
	kc := NewKeyChainWithParams(testParams)
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := kc.DeriveKey("correct horse battery staple", salt)
	k2 := kc.DeriveKey("correct horse battery staple", salt)
	k3 := kc.DeriveKey("correct horse battery staple", bytes.Repeat([]byte{0x01}, 16))
	k4 := kc.DeriveKey("other password", salt)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.NotEqual(t, k1, k4)
}

func TestNewKeyChainWithParams_ZeroFallsBackToDefaults(t *testing.T) {
	kc := NewKeyChainWithParams(Params{}).(*keyChain)
	assert.Equal(t, DefaultParams, kc.params)
}

func TestDeriveSubKey(t *testing.T) {
	kc := NewKeyChain()
	secret := []byte("deployment secret")

	a, err := kc.DeriveSubKey(secret, "envelope-v1")
	require.NoError(t, err)
	b, err := kc.DeriveSubKey(secret, "envelope-v1")
	require.NoError(t, err)
	c, err := kc.DeriveSubKey(secret, "other")
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSealOpen(t *testing.T) {
	kc := NewKeyChain()
	key := bytes.Repeat([]byte{0x42}, 32)
	plaintext := []byte(`{"address":"0xABC"}`)

	t.Run("round trip", func(t *testing.T) {
		blob, err := kc.Seal(key, plaintext)
		require.NoError(t, err)

		got, err := kc.Open(key, blob)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	})

	t.Run("fresh nonce per call", func(t *testing.T) {
		b1, err := kc.Seal(key, plaintext)
		require.NoError(t, err)
		b2, err := kc.Seal(key, plaintext)
		require.NoError(t, err)
		assert.NotEqual(t, b1, b2)
	})

	t.Run("wrong key", func(t *testing.T) {
		blob, err := kc.Seal(key, plaintext)
		require.NoError(t, err)

		_, err = kc.Open(bytes.Repeat([]byte{0x43}, 32), blob)
		assert.ErrorIs(t, err, ErrOpen)
	})

	t.Run("tampered", func(t *testing.T) {
		blob, err := kc.Seal(key, plaintext)
		require.NoError(t, err)
		blob[len(blob)-1] ^= 0xFF

		_, err = kc.Open(key, blob)
		assert.ErrorIs(t, err, ErrOpen)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := kc.Open(key, []byte{1, 2, 3})
		assert.ErrorIs(t, err, ErrCiphertextTooShort)
	})

	t.Run("bad key size", func(t *testing.T) {
		_, err := kc.Seal([]byte("short"), plaintext)
		assert.Error(t, err)
	})
}
