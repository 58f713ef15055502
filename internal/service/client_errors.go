package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-keeper/internal/app"
	"github.com/MKhiriev/go-cred-keeper/models"
)

// Client-side validation errors. Their text is shown as is.
var (
	ErrMissingCredentials  = errors.New(app.MsgMissingCredentials)
	ErrMissingName         = errors.New(app.MsgMissingName)
	ErrMissingMnemonic     = errors.New(app.MsgMissingMnemonic)
	ErrMissingKeyFile      = errors.New(app.MsgKeyFileMissing)
	ErrMissingKeyPassword  = errors.New(app.MsgKeyFilePassword)
	ErrMissingHolderOrFile = errors.New(app.MsgMissingHolderOrFile)
	ErrMissingCredentialID = errors.New(app.MsgMissingCredentialID)
	ErrInvalidCredentialID = errors.New(app.MsgInvalidCredentialID)
	ErrMissingFile         = errors.New(app.MsgMissingFile)

	// ErrAdminLogin is returned when the key file opened but the server did
	// not confirm the government role.
	ErrAdminLogin = errors.New(app.MsgAdminLoginFailed)

	// ErrRegisterOnServer is returned when the server accepted the call but
	// sent no key material back.
	ErrRegisterOnServer = errors.New(app.MsgRegistrationFailed)
)

// RoleMismatchError is returned by login when the vault record belongs to a
// different portal than the one the user picked.
type RoleMismatchError struct {
	Registered models.Role
	Requested  models.Role
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf(app.MsgRoleMismatchFormat, e.Registered, e.Requested)
}
