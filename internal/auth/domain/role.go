// Package domain defines authentication and authorization domain models.
// Implements role-based access control with users, signed tokens, and a static route policy.
package domain

import "strings"

// Role is the single authority carried by a principal.
type Role string

const (
	// RoleAdmin grants full catalog management.
	RoleAdmin Role = "ADMIN"

	// RoleUser grants read-only catalog access.
	RoleUser Role = "USER"

	// RoleNone is the explicit "no role" value for tokens without a role claim.
	RoleNone Role = ""
)

// rolePrefix is the authority form some token issuers use ("ROLE_ADMIN").
const rolePrefix = "ROLE_"

// IsKnown reports whether r is ADMIN or USER.
func (r Role) IsKnown() bool {
	return r == RoleAdmin || r == RoleUser
}

// String returns the role name.
func (r Role) String() string {
	return string(r)
}

// ResolveRole maps a requested role at registration time to a known role.
// Missing or unrecognized values default to USER. Matching is case-sensitive.
func ResolveRole(requested string) Role {
	role := Role(requested)
	if role.IsKnown() {
		return role
	}
	return RoleUser
}

// ParseRole maps a role claim read from a verified token. Unlike ResolveRole it keeps
// unrecognized values as-is so they never satisfy a role-restricted rule.
// The "ROLE_" authority prefix is stripped.
func ParseRole(claim string) Role {
	return Role(strings.TrimPrefix(claim, rolePrefix))
}
