// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-cred-keeper/internal/adapter"
	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/internal/vault"
)

var clientMessages = []struct {
	err error
	msg string
}{
	{vault.ErrNotFound, app.MsgUserNotFound},
	{vault.ErrWrongPassword, app.MsgIncorrectPassword},
	{vault.ErrSaveFailed, app.MsgSaveFailed},
	{vault.ErrKeyFileDecrypt, app.MsgKeyFileDecrypt},
	{vault.ErrKeyFileAddress, app.MsgKeyFileAddress},
}

var validationErrors = []error{
	ErrMissingCredentials,
	ErrMissingName,
	ErrMissingMnemonic,
	ErrMissingKeyFile,
	ErrMissingKeyPassword,
	ErrMissingHolderOrFile,
	ErrMissingCredentialID,
	ErrInvalidCredentialID,
	ErrMissingFile,
	ErrAdminLogin,
	ErrRegisterOnServer,
}

// UserMessage collapses err into text that is safe to show. Vault errors
// keep their fixed wording, server rejections show the server's message and
// anything else, cipher and transport failures included, becomes fallback.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	for _, m := range clientMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	var mismatch *RoleMismatchError
	if errors.As(err, &mismatch) {
		return mismatch.Error()
	}

	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return v.Error()
		}
	}

	if errors.Is(err, adapter.ErrTransport) || errors.Is(err, adapter.ErrInvalidResponse) {
		return fallback
	}
	if msg := adapter.ServerMessage(err); msg != "" && msg != app.MsgInternalServerError {
		return msg
	}

	return fallback
}
