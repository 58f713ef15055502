// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role identifies the portal an account belongs to. The string values are
// the exact ones exchanged with the server and stored in the vault.
type Role string

const (
	// RoleGov is the government administrator that approves issuers.
	RoleGov Role = "Gov"

	// RoleUniversity is an issuer of credentials.
	RoleUniversity Role = "University"

	// RoleStudent is a holder of credentials.
	RoleStudent Role = "Student"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleGov, RoleUniversity, RoleStudent:
		return true
	}
	return false
}

// CanRegister reports whether accounts of this role may be created through
// the public registration route. The Gov account is provisioned by config.
func (r Role) CanRegister() bool {
	return r == RoleUniversity || r == RoleStudent
}

func (r Role) String() string {
	return string(r)
}
