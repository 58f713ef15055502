// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the server's persistence layer: the PostgreSQL ledger
// of accounts, issuer requests and credentials, and the content-addressed
// document store (local directory or S3 bucket).
//
// Repository queries are built with squirrel using the Dollar placeholder
// format. Writes that must be atomic run through [DB.InTx], which places the
// transaction on the context so every repository call made with that context
// joins it.
package store
