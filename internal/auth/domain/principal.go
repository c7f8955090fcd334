package domain

// Principal is the authenticated caller attached to a request.
type Principal struct {
	Identity string
	Role     Role
}

// HasAnyRole reports whether the principal's role is one of roles.
func (p Principal) HasAnyRole(roles ...Role) bool {
	if p.Role == RoleNone {
		return false
	}
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}

// Authentication is the per-request authentication state. It is either
// Authenticated or Anonymous; no other implementations exist.
type Authentication interface {
	isAuthentication()
}

// Authenticated carries a principal resolved from a verified token.
type Authenticated struct {
	Principal Principal
}

// Anonymous is the state of requests with no usable credential.
type Anonymous struct{}

func (Authenticated) isAuthentication() {}
func (Anonymous) isAuthentication()     {}

// PrincipalOf returns the principal of an Authenticated state.
func PrincipalOf(auth Authentication) (Principal, bool) {
	authenticated, ok := auth.(Authenticated)
	if !ok {
		return Principal{}, false
	}
	return authenticated.Principal, true
}
