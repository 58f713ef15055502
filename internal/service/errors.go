package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidMnemonic     = errors.New("invalid mnemonic")

	ErrAccountNotFound  = errors.New("account not found")
	ErrAccountExists    = errors.New("account already exists")
	ErrUniversityExists = errors.New("university is already registered")

	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenIsExpired = errors.New("token is expired")

	ErrRequestNotFound = errors.New("issuer request not found")

	ErrNotApprovedIssuer   = errors.New("university is not an approved issuer")
	ErrHolderNotStudent    = errors.New("holder is not a registered student")
	ErrHashMismatch        = errors.New("credential hash does not match the file")
	ErrCredentialExists    = errors.New("credential already issued")
	ErrCredentialNotFound  = errors.New("credential not found")
	ErrNotCredentialIssuer = errors.New("credential was issued by another university")
	ErrAlreadyRevoked      = errors.New("credential is already revoked")
	ErrFileNotFound        = errors.New("file not found")
)
