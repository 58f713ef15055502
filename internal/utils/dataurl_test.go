package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDataURL(t *testing.T) {
	assert.Equal(t, "data:text/plain;base64,aGk=", EncodeDataURL("text/plain", []byte("hi")))
	assert.Equal(t, "data:application/octet-stream;base64,aGk=", EncodeDataURL("", []byte("hi")))
}

func TestParseDataURL(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		mediaType string
		data      string
		wantErr   bool
	}{
		{name: "base64", in: "data:application/pdf;base64,JVBERi0=", mediaType: "application/pdf", data: "%PDF-"},
		{name: "percent encoded", in: "data:text/plain,hello%20world", mediaType: "text/plain", data: "hello world"},
		{name: "default media type", in: "data:,x", mediaType: "text/plain", data: "x"},
		{name: "charset only", in: "data:;charset=utf-8,x", mediaType: "text/plain;charset=utf-8", data: "x"},
		{name: "no prefix", in: "text/plain,x", wantErr: true},
		{name: "no comma", in: "data:text/plain;base64", wantErr: true},
		{name: "bad base64", in: "data:text/plain;base64,!!!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mediaType, data, err := ParseDataURL(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDataURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mediaType, mediaType)
			assert.Equal(t, tt.data, string(data))
		})
	}
}

func TestDataURL_RoundTrip(t *testing.T) {
	raw := []byte{0x00, 0xff, 0x10, 0x80}

	mediaType, data, err := ParseDataURL(EncodeDataURL("image/png", raw))
	require.NoError(t, err)
	assert.Equal(t, "image/png", mediaType)
	assert.Equal(t, raw, data)
}
