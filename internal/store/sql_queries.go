// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cred-keeper/models"
)

const (
	accountsTable       = "accounts"
	issuerRequestsTable = "issuer_requests"
	credentialsTable    = "credentials"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	accountColumns       = []string{"address", "role", "name", "created_at"}
	issuerRequestColumns = []string{"university_name", "address", "status", "created_at", "updated_at"}
	credentialColumns    = []string{"hash", "holder", "issuer", "cid", "revoked", "issued_at", "revoked_at"}
)

func buildInsertAccountQuery(a models.Account) (string, []any, error) {
	return psql.Insert(accountsTable).
		Columns("address", "role", "name").
		Values(a.Address, string(a.Role), a.Name).
		Suffix("RETURNING " + joinColumns(accountColumns)).
		ToSql()
}

func buildSelectAccountQuery(address string) (string, []any, error) {
	return psql.Select(accountColumns...).
		From(accountsTable).
		Where(sq.Expr("lower(address) = lower(?)", address)).
		ToSql()
}

func buildSelectAccountByNameQuery(role models.Role, name string) (string, []any, error) {
	return psql.Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"role": string(role), "name": name}).
		Limit(1).
		ToSql()
}

func buildInsertIssuerRequestQuery(r models.IssuerRequest) (string, []any, error) {
	return psql.Insert(issuerRequestsTable).
		Columns("university_name", "address", "status").
		Values(r.UniversityName, r.Address, string(r.Status)).
		Suffix("RETURNING " + joinColumns(issuerRequestColumns)).
		ToSql()
}

func buildSelectIssuerRequestsQuery() (string, []any, error) {
	return psql.Select(issuerRequestColumns...).
		From(issuerRequestsTable).
		OrderBy("created_at", "university_name").
		ToSql()
}

func buildSelectIssuerRequestByAddressQuery(address string) (string, []any, error) {
	return psql.Select(issuerRequestColumns...).
		From(issuerRequestsTable).
		Where(sq.Expr("lower(address) = lower(?)", address)).
		ToSql()
}

func buildUpdateIssuerRequestStatusQuery(name string, status models.RequestStatus, now time.Time) (string, []any, error) {
	return psql.Update(issuerRequestsTable).
		Set("status", string(status)).
		Set("updated_at", now).
		Where(sq.Eq{"university_name": name}).
		Suffix("RETURNING " + joinColumns(issuerRequestColumns)).
		ToSql()
}

func buildCountIssuerRequestsQuery() (string, []any, error) {
	return psql.Select("status", "count(*)").
		From(issuerRequestsTable).
		GroupBy("status").
		ToSql()
}

func buildInsertCredentialQuery(c models.Credential) (string, []any, error) {
	return psql.Insert(credentialsTable).
		Columns("hash", "holder", "issuer", "cid").
		Values(c.Hash, c.Holder, c.Issuer, c.CID).
		Suffix("RETURNING " + joinColumns(credentialColumns)).
		ToSql()
}

func buildSelectCredentialQuery(hash string) (string, []any, error) {
	return psql.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"hash": hash}).
		ToSql()
}

func buildSelectCredentialsByQuery(column, address string) (string, []any, error) {
	return psql.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Expr("lower("+column+") = lower(?)", address)).
		OrderBy("issued_at DESC", "hash").
		ToSql()
}

func buildRevokeCredentialQuery(hash, issuer string, now time.Time) (string, []any, error) {
	return psql.Update(credentialsTable).
		Set("revoked", true).
		Set("revoked_at", now).
		Where(sq.Eq{"hash": hash, "revoked": false}).
		Where(sq.Expr("lower(issuer) = lower(?)", issuer)).
		Suffix("RETURNING " + joinColumns(credentialColumns)).
		ToSql()
}

func buildCountCredentialsQuery() (string, []any, error) {
	return psql.Select("revoked", "count(*)").
		From(credentialsTable).
		GroupBy("revoked").
		ToSql()
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
