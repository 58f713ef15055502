// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the server
// handlers, the client services and the terminal views.
//
// The wording matches what the web portals already show, so a user moving
// between the browser and the terminal client sees the same text.
package app

const (
	// MsgInvalidEncryptedData is the only detail a client gets when an
	// envelope fails to open.
	MsgInvalidEncryptedData = "Invalid encrypted data"

	// MsgInternalServerError replaces any error the server did not expect.
	MsgInternalServerError = "Internal Server Error"
)

// Vault and login outcomes.
const (
	MsgUserNotFound       = "User not found"
	MsgIncorrectPassword  = "Incorrect password"
	MsgSaveFailed         = "Failed to save credentials locally."
	MsgRoleMismatchFormat = "This account is registered as %s, not %s."

	MsgKeyFileDecrypt      = "Decryption failed. Invalid Password or corrupt file."
	MsgKeyFileAddress      = "Invalid Admin File (Address missing)"
	MsgKeyFileMissing      = "Please upload the Admin Keyfile"
	MsgKeyFilePassword     = "Please enter the decryption password"
	MsgAdminLoginFailed    = "Admin verification failed"
	MsgLoginFailed         = "Login failed"
	MsgRecoverFailed       = "Recovery failed"
	MsgMissingCredentials  = "Please enter username and password"
	MsgMissingName         = "Please enter a name"
	MsgMissingMnemonic     = "Please enter the recovery phrase"
	MsgRegistrationFailed  = "Registration Failed"
	MsgRegistrationPending = "Registration successful! Awaiting government approval."
	MsgRegistrationSuccess = "Registration successful!"
)

// Credential outcomes.
const (
	MsgMissingHolderOrFile = "Please provide holder wallet and select a file"
	MsgMissingCredentialID = "Please provide the Credential ID to revoke"
	MsgInvalidCredentialID = "Credential ID must be a 64 character hex hash"
	MsgMissingFile         = "Please select a file"

	MsgIssueSuccess      = "Credential issued successfully"
	MsgIssueFailed       = "Issuance failed"
	MsgRevokeSuccess     = "Credential revoked successfully"
	MsgRevokeFailed      = "Revocation failed"
	MsgListFailed        = "Failed to fetch credentials"
	MsgVerifyFailed      = "Verification process failed."
	MsgFileNotAvailable  = "File data not available"
	MsgCredentialValid   = "Credential is authentic and active."
	MsgCredentialRevoked = "Credential was revoked by its issuer."
	MsgCredentialUnknown = "No credential matches this document."
)

// Admin outcomes.
const (
	MsgRequestsFailed = "Failed to fetch issuer requests"
	MsgApproveSuccess = "University approved"
	MsgRejectSuccess  = "University rejected"
	MsgDecisionFailed = "Action failed"
)

// Chat assistant.
const (
	MsgChatGreeting    = "Hello! I can guide you through the app."
	MsgChatUnreachable = "Sorry, I couldn't reach the server."
)
