package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a key file as written by the old server-side sealing script: the JSON
// document is itself JSON-string encoded, passphrase "a"
const legacyKeyFile = "U2FsdGVkX18REhMUFRYXGO6mn04WrFjM/cHosR5i1fD3H8S5qbDhGRAl0d8NypEvrzXkNj15xDdr5vAk3Snb9UuBgSB+3FK3TswirDg5PB3UynBzVMT0aVeImfTNPsl9"

func TestOpenKeyFile_Legacy(t *testing.T) {
	address, err := OpenKeyFile(legacyKeyFile+"\n", "a")
	require.NoError(t, err)
	assert.Equal(t, "0x8042CCF709ABEf7af0B5Ca4d1b4655C6592EA08E", address)

	_, err = OpenKeyFile(legacyKeyFile, "b")
	assert.ErrorIs(t, err, ErrKeyFileDecrypt)
}

func TestSealKeyFile_RoundTrip(t *testing.T) {
	sealed, err := SealKeyFile("0xGOV", "admin-pass")
	require.NoError(t, err)

	address, err := OpenKeyFile(sealed, "admin-pass")
	require.NoError(t, err)
	assert.Equal(t, "0xGOV", address)

	_, err = SealKeyFile("", "admin-pass")
	assert.ErrorIs(t, err, ErrKeyFileAddress)
}

func TestOpenKeyFile_AddressField(t *testing.T) {
	sealed, err := sealRaw(`{"address":"0xOLD"}`, "p")
	require.NoError(t, err)
	address, err := OpenKeyFile(sealed, "p")
	require.NoError(t, err)
	assert.Equal(t, "0xOLD", address)

	sealed, err = sealRaw(`{"name":"gov"}`, "p")
	require.NoError(t, err)
	_, err = OpenKeyFile(sealed, "p")
	assert.ErrorIs(t, err, ErrKeyFileAddress)

	_, err = OpenKeyFile("not a key file", "p")
	assert.ErrorIs(t, err, ErrKeyFileDecrypt)
}
