// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cred-keeper/internal/logger"
	"github.com/MKhiriev/go-cred-keeper/models"
)

const (
	testHash   = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	testHolder = "0x00000000000000000000000000000000000000aa"
	testCID    = "bafkreif2pall7dybz7vecqka3zo24irdwabwdi4wc55jznaq75q7eaavvu"
)

func newTestCredentialRepo(t *testing.T) (CredentialRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewCredentialRepository(db, logger.Nop()), mock
}

func credentialRow(rows *sqlmock.Rows, c models.Credential) *sqlmock.Rows {
	var revokedAt any
	if c.RevokedAt != nil {
		revokedAt = *c.RevokedAt
	}
	return rows.AddRow(c.Hash, c.Holder, c.Issuer, c.CID, c.Revoked, c.IssuedAt, revokedAt)
}

func TestCreateCredential(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	in := models.Credential{Hash: testHash, Holder: testHolder, Issuer: testAddress, CID: testCID}
	stored := in
	stored.IssuedAt = time.Now().UTC()

	mock.ExpectQuery("INSERT INTO credentials").
		WithArgs(testHash, testHolder, testAddress, testCID).
		WillReturnRows(credentialRow(sqlmock.NewRows(credentialColumns), stored))

	created, err := repo.CreateCredential(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, stored, created)
	assert.Nil(t, created.RevokedAt)
}

func TestCreateCredential_Duplicate(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery("INSERT INTO credentials").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCredential(context.Background(), models.Credential{Hash: testHash})
	assert.ErrorIs(t, err, ErrCredentialExists)
}

func TestFindCredential(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	revokedAt := time.Now().UTC()
	stored := models.Credential{Hash: testHash, Holder: testHolder, Issuer: testAddress, CID: testCID, Revoked: true, IssuedAt: revokedAt.Add(-time.Hour), RevokedAt: &revokedAt}

	mock.ExpectQuery(`FROM credentials WHERE hash = \$1`).
		WithArgs(testHash).
		WillReturnRows(credentialRow(sqlmock.NewRows(credentialColumns), stored))

	found, err := repo.FindCredential(context.Background(), testHash)
	require.NoError(t, err)
	require.NotNil(t, found.RevokedAt)
	assert.True(t, found.Revoked)
	assert.Equal(t, revokedAt, *found.RevokedAt)
}

func TestFindCredential_NotFound(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery("FROM credentials").WillReturnRows(sqlmock.NewRows(credentialColumns))

	_, err := repo.FindCredential(context.Background(), testHash)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestListByHolderAndIssuer(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	now := time.Now().UTC()
	c := models.Credential{Hash: testHash, Holder: testHolder, Issuer: testAddress, CID: testCID, IssuedAt: now}

	mock.ExpectQuery(`FROM credentials WHERE lower\(holder\) = lower\(\$1\) ORDER BY issued_at DESC, hash`).
		WithArgs(testHolder).
		WillReturnRows(credentialRow(sqlmock.NewRows(credentialColumns), c))
	mock.ExpectQuery(`FROM credentials WHERE lower\(issuer\) = lower\(\$1\) ORDER BY issued_at DESC, hash`).
		WithArgs(testAddress).
		WillReturnRows(sqlmock.NewRows(credentialColumns))

	held, err := repo.ListByHolder(context.Background(), testHolder)
	require.NoError(t, err)
	assert.Equal(t, []models.Credential{c}, held)

	issued, err := repo.ListByIssuer(context.Background(), testAddress)
	require.NoError(t, err)
	assert.Empty(t, issued)
}

func TestListByHolder_ScanError(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery("FROM credentials").
		WillReturnRows(sqlmock.NewRows([]string{"hash"}).AddRow(testHash))

	_, err := repo.ListByHolder(context.Background(), testHolder)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestRevokeCredential(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	now := time.Now().UTC()
	revoked := models.Credential{Hash: testHash, Holder: testHolder, Issuer: testAddress, CID: testCID, Revoked: true, IssuedAt: now, RevokedAt: &now}

	mock.ExpectQuery(`UPDATE credentials SET revoked = \$1, revoked_at = \$2 WHERE hash = \$3 AND revoked = \$4 AND lower\(issuer\) = lower\(\$5\)`).
		WithArgs(true, sqlmock.AnyArg(), testHash, false, testAddress).
		WillReturnRows(credentialRow(sqlmock.NewRows(credentialColumns), revoked))

	got, err := repo.RevokeCredential(context.Background(), testHash, testAddress)
	require.NoError(t, err)
	assert.True(t, got.Revoked)
	assert.NotNil(t, got.RevokedAt)
}

func TestRevokeCredential_NoActiveMatch(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery("UPDATE credentials").WillReturnRows(sqlmock.NewRows(credentialColumns))

	_, err := repo.RevokeCredential(context.Background(), testHash, testAddress)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestCount(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery(`SELECT revoked, count\(\*\) FROM credentials GROUP BY revoked`).
		WillReturnRows(sqlmock.NewRows([]string{"revoked", "count"}).AddRow(false, 7).AddRow(true, 2))

	active, revoked, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), active)
	assert.Equal(t, int64(2), revoked)
}

func TestCount_Error(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectQuery("SELECT revoked").WillReturnError(errors.New("boom"))

	_, _, err := repo.Count(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
