package domain

import (
	"github.com/allisson/catalog/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrIdentityTaken indicates registration for an email that already exists.
	ErrIdentityTaken = errors.NewDetailed(errors.ErrInvalidInput, "Email already in use")

	// ErrIdentityNotFound indicates login for an unknown email.
	// It shares the client message of ErrInvalidCredentials.
	ErrIdentityNotFound = errors.NewDetailed(errors.ErrUnauthorized, "Invalid credentials")

	// ErrInvalidCredentials indicates a password that does not match the stored hash.
	ErrInvalidCredentials = errors.NewDetailed(errors.ErrUnauthorized, "Invalid credentials")

	// ErrInvalidToken indicates a token that failed signature, expiry, or claim checks.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrUserNotFound indicates a user lookup by email found nothing.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")
)
