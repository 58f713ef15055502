package service

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService covers account creation, login and logout on the
// terminal client. Wallet keys are kept in the local vault; the server only
// ever sees the wallet address.
type ClientAuthService interface {
	// Register asks the server for a new wallet and saves it in the vault
	// under username, encrypted with password. For universities the
	// returned message says that approval is pending.
	Register(ctx context.Context, role models.Role, name, username, password string) (models.Registration, error)

	// Login opens the vault record of username, checks that it belongs to
	// role, logs the wallet in on the server and stores the session.
	// Returns a [*RoleMismatchError] when the record was made for another
	// role.
	Login(ctx context.Context, role models.Role, username, password string) (models.Identity, error)

	// AdminLogin opens an admin key file with password and logs its wallet
	// in. The server must confirm the government role.
	AdminLogin(ctx context.Context, keyFile, password string) (models.Identity, error)

	// Recover asks the server to derive the key pair of a wallet from its
	// recovery phrase.
	Recover(ctx context.Context, mnemonic string) (models.NewAccount, error)

	// Logout clears the stored session.
	Logout(ctx context.Context) error
}

// ClientCredentialService issues, lists, verifies and revokes credentials.
type ClientCredentialService interface {
	// Issue reads the document at path, hashes its data URL and issues it to
	// the holder wallet.
	Issue(ctx context.Context, holder, path string) (models.IssuedCredential, error)

	// List returns the credentials of the logged-in holder or issuer.
	List(ctx context.Context) ([]models.Credential, error)

	// Verify hashes the document at path and asks the server about it.
	Verify(ctx context.Context, path string) (models.VerifyResult, error)

	// Revoke revokes the credential with the given content hash.
	Revoke(ctx context.Context, hash string) error

	// Link returns the public gateway link of a stored document.
	Link(cid string) string

	// Download saves the document addressed by cid into dir and returns the
	// written path.
	Download(ctx context.Context, cid, dir string) (string, error)
}

// ClientIssuerService drives the admin dashboard.
type ClientIssuerService interface {
	Pending(ctx context.Context) ([]models.IssuerRequest, error)
	Approved(ctx context.Context) ([]models.IssuerRequest, error)
	Approve(ctx context.Context, universityName string) error
	Reject(ctx context.Context, universityName string) error
}
