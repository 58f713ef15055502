// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cred-keeper/internal/config"
	"github.com/MKhiriev/go-cred-keeper/internal/logger"
)

func TestComputeCID(t *testing.T) {
	data := []byte("data:text/plain;base64,ZGlwbG9tYQ==")

	id, err := ComputeCID(data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "bafkrei"), "CIDv1 raw sha2-256 in base32")

	c, err := cid.Decode(id)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), c.Version())
	assert.Equal(t, uint64(cid.Raw), c.Type())

	decoded, err := multihash.Decode(c.Hash())
	require.NoError(t, err)
	assert.Equal(t, uint64(multihash.SHA2_256), decoded.Code)

	again, err := ComputeCID(data)
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestLocalFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "files")
	fs, err := NewLocalFileStore(dir, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	data := []byte("data:application/pdf;base64,JVBERi0=")

	id, err := fs.Put(ctx, data)
	require.NoError(t, err)

	got, err := fs.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// idempotent
	id2, err := fs.Put(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, id, id2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestLocalFileStore_Get_Errors(t *testing.T) {
	fs, err := NewLocalFileStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	unknown, err := ComputeCID([]byte("never stored"))
	require.NoError(t, err)

	_, err = fs.Get(context.Background(), unknown)
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = fs.Get(context.Background(), "../../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidCID)
}

type fakeS3 struct {
	objects map[string][]byte
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func TestS3FileStore(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}}
	fs := newS3FileStore(fake, "credentials", logger.Nop())
	ctx := context.Background()

	id, err := fs.Put(ctx, []byte("hello"))
	require.NoError(t, err)
	assert.Contains(t, fake.objects, "credentials/"+id)

	got, err := fs.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))

	missing, err := ComputeCID([]byte("missing"))
	require.NoError(t, err)
	_, err = fs.Get(ctx, missing)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestNewFileStore_UnknownBackend(t *testing.T) {
	_, err := NewFileStore(context.Background(), config.Files{Backend: "ftp"}, logger.Nop())
	assert.Error(t, err)
}
