package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHash(t *testing.T) {
	// sha256("") and sha256("abc")
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ContentHash(""))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", ContentHash("abc"))
}

func TestContentHash_HashesTheDataURLText(t *testing.T) {
	a := EncodeDataURL("text/plain", []byte("diploma"))
	b := EncodeDataURL("application/pdf", []byte("diploma"))

	assert.NotEqual(t, ContentHash(a), ContentHash(b), "media type is part of the hashed input")
	assert.Equal(t, ContentHash(a), ContentHash(a))
}

func TestIsContentHash(t *testing.T) {
	assert.True(t, IsContentHash(ContentHash("x")))
	assert.False(t, IsContentHash(""))
	assert.False(t, IsContentHash("BA7816BF8F01CFEA414140DE5DAE2223B00361A396177A9CB410FF61F20015AD"))
	assert.False(t, IsContentHash("0x"+ContentHash("x")))
}
