package tui

import (
	"github.com/MKhiriev/go-cred-keeper/models"
)

const (
	pageMenu       = "menu"
	pageLogin      = "login"
	pageRegister   = "register"
	pageAdminLogin = "admin_login"
	pageMnemonic   = "mnemonic"
	pageRecover    = "recover"
	pageHolder     = "holder"
	pageIssuer     = "issuer"
	pageGov        = "gov"
	pageVerifier   = "verifier"
	pageChat       = "chat"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// roleSelected opens the login or register page for a portal.
type roleSelected struct {
	role models.Role
}

// sessionStarted opens a dashboard for the logged-in identity.
type sessionStarted struct {
	identity models.Identity
}

// LoginResult finishes a login attempt on any of the auth pages.
type LoginResult struct {
	Identity models.Identity
	Err      error
}

// RegisterResult finishes a registration attempt.
type RegisterResult struct {
	Role         models.Role
	Registration models.Registration
	Err          error
}

type registrationShown struct {
	role         models.Role
	registration models.Registration
}

type logoutRequested struct{}

// LogoutResult is produced once the session slots were cleared.
type LogoutResult struct {
	Err error
}

// loggedOut tells the menu how the logout went.
type loggedOut struct {
	err error
}

type credentialsLoadedMsg struct {
	items []models.Credential
	err   error
}

type requestsLoadedMsg struct {
	pending  []models.IssuerRequest
	approved []models.IssuerRequest
	err      error
}

// actionDoneMsg reports a state-changing call of the current page.
type actionDoneMsg struct {
	message string
	err     error
}

type verifiedMsg struct {
	result models.VerifyResult
	err    error
}

type recoveredMsg struct {
	account models.NewAccount
	err     error
}

type chatReplyMsg struct {
	reply string
	err   error
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
