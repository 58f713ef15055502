// Package utils provides general-purpose helpers shared by the server and
// the client: context keys for the authenticated identity, content hashing,
// data URLs, JSON responses, JWT handling and the HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/go-cred-keeper/models"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// WalletCtxKey stores the authenticated wallet address.
	WalletCtxKey = contextKey("wallet")

	// RoleCtxKey stores the role claim of the access token.
	RoleCtxKey = contextKey("role")
)

// WithIdentity returns a copy of ctx carrying the caller's wallet and role.
func WithIdentity(ctx context.Context, wallet string, role models.Role) context.Context {
	ctx = context.WithValue(ctx, WalletCtxKey, wallet)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetWalletFromContext returns the wallet address stored by [WithIdentity].
func GetWalletFromContext(ctx context.Context) (string, bool) {
	wallet, ok := ctx.Value(WalletCtxKey).(string)
	return wallet, ok && wallet != ""
}

// GetRoleFromContext returns the role stored by [WithIdentity].
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok && role.IsValid()
}
