// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is an issued document record. It is identified by the content
// hash of the document and points at the stored file by its CID.
type Credential struct {
	// Hash is the lowercase hex SHA-256 of the document data URL.
	Hash string `json:"credentialHash"`

	// Holder is the student wallet address the credential was issued to.
	Holder string `json:"holder"`

	// Issuer is the university wallet address that issued the credential.
	Issuer string `json:"issuer"`

	// CID addresses the stored document in the file store.
	CID string `json:"cid"`

	Revoked   bool       `json:"revoked"`
	IssuedAt  time.Time  `json:"issuedAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}

// Verification is the outcome of looking a content hash up in the ledger.
type Verification struct {
	Hash       string      `json:"credentialHash"`
	Valid      bool        `json:"valid"`
	Revoked    bool        `json:"revoked"`
	Credential *Credential `json:"credential,omitempty"`
}
