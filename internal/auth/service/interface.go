// Package service provides technical services for authentication operations.
//
// This package implements the signed access token codec, password hashing and
// verification, and loading of the token signing key.
package service

import (
	"time"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
)

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// GeneratePassword creates a random password for accounts provisioned
	// without one. The plain value is shown to the operator once; only the
	// hash is persisted.
	GeneratePassword() (plainPassword string, passwordHash string, err error)

	// HashPassword hashes a plain text password for storage.
	HashPassword(plainPassword string) (passwordHash string, err error)

	// ComparePassword reports whether plainPassword matches passwordHash.
	ComparePassword(plainPassword string, passwordHash string) bool
}

// TokenService issues and verifies signed, time-bound access tokens.
// Tokens are self-contained: nothing is stored server-side.
type TokenService interface {
	// Issue signs a token for identity and role that expires ttl from now.
	// Identical inputs at the same clock instant produce identical tokens.
	Issue(identity string, role authDomain.Role, ttl time.Duration) (string, error)

	// Parse verifies the signature, then the expiry, then extracts the claims.
	// Every failure is reported as authDomain.ErrInvalidToken.
	Parse(token string) (*authDomain.Claims, error)
}
