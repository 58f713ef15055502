// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Payloads exchanged inside the envelope. Field names follow the wire
// contract the web portals already speak, typos in route names included.

// RegisterRequest is the body of POST /api/register. Exactly one of the
// name fields is meaningful, depending on Role.
type RegisterRequest struct {
	Role           Role   `json:"role"`
	StudentName    string `json:"studentName,omitempty"`
	UniversityName string `json:"universityName,omitempty"`
}

// Name returns the display name matching the requested role.
func (r RegisterRequest) Name() string {
	if r.Role == RoleUniversity {
		return r.UniversityName
	}
	return r.StudentName
}

type RegisterResponse struct {
	Status   bool        `json:"status"`
	Account  *NewAccount `json:"account,omitempty"`
	Mnemonic string      `json:"mnemonic,omitempty"`
	Error    string      `json:"error,omitempty"`
}

type LoginRequest struct {
	WalletAddress string `json:"walletAddress"`
}

type LoginResponse struct {
	Status bool   `json:"status"`
	Token  string `json:"token,omitempty"`
	Role   Role   `json:"role,omitempty"`
	Error  string `json:"error,omitempty"`
}

type RecoverRequest struct {
	Mnemonic string `json:"mnemonic"`
}

type RecoverResponse struct {
	Status  bool        `json:"status"`
	Account *NewAccount `json:"account,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// IssueRequest is the body of POST /api/issueCredenctials.
type IssueRequest struct {
	// Student is the holder wallet address.
	Student string `json:"student"`

	// CredentialHash must be the content hash of CredentialFile.
	CredentialHash string `json:"credentialHash"`

	// CredentialFile is the document as a data URL.
	CredentialFile string `json:"credentialFile"`
}

type IssueResponse struct {
	Status bool   `json:"status"`
	CID    string `json:"cid,omitempty"`
	Error  string `json:"error,omitempty"`
}

type CredentialsResponse struct {
	Status      bool         `json:"status"`
	Credentials []Credential `json:"credentials"`
	Error       string       `json:"error,omitempty"`
}

// HashRequest carries a content hash for verify and revoke.
type HashRequest struct {
	CredentialHash string `json:"credentialHash"`
}

type VerifyResponse struct {
	Status     bool        `json:"status"`
	Valid      bool        `json:"valid"`
	Revoked    bool        `json:"revoked"`
	Credential *Credential `json:"credential,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// StatusResponse is the generic reply of state-changing routes.
type StatusResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type RequestsResponse struct {
	Status   bool            `json:"status"`
	Requests []IssuerRequest `json:"requests"`
	Error    string          `json:"error,omitempty"`
}

// UniversityRequest is the body of POST /api/approve and POST /api/reject.
type UniversityRequest struct {
	UniversityName string `json:"universityName"`
}

type FileResponse struct {
	Status bool   `json:"status"`
	CID    string `json:"cid,omitempty"`
	File   string `json:"file,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ErrorResponse is the plain body sent when a request never reached a
// handler, e.g. an envelope that failed to decrypt.
type ErrorResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// ChatRequest and ChatResponse are exchanged in plain JSON with the
// assistant backend.
type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
