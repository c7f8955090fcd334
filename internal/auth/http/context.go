// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"context"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
)

// authenticationKey is a context key type for storing the authentication state.
type authenticationKey struct{}

// WithAuthentication stores the request's authentication state in the context.
// This is called by the authentication middleware for every request, anonymous ones included.
func WithAuthentication(ctx context.Context, auth authDomain.Authentication) context.Context {
	return context.WithValue(ctx, authenticationKey{}, auth)
}

// GetAuthentication retrieves the authentication state from the context.
// A context the middleware never saw is treated as Anonymous.
func GetAuthentication(ctx context.Context) authDomain.Authentication {
	auth, ok := ctx.Value(authenticationKey{}).(authDomain.Authentication)
	if !ok || auth == nil {
		return authDomain.Anonymous{}
	}
	return auth
}

// GetPrincipal returns the authenticated principal, or false for anonymous requests.
func GetPrincipal(ctx context.Context) (authDomain.Principal, bool) {
	return authDomain.PrincipalOf(GetAuthentication(ctx))
}
