// Package usecase defines business logic interfaces for authentication and authorization operations.
package usecase

import (
	"context"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
)

// UserRepository defines persistence operations for registered users.
// Implementations must support transaction-aware operations via context propagation.
type UserRepository interface {
	// Create stores a new user. Returns ErrIdentityTaken if the email is already registered.
	Create(ctx context.Context, user *authDomain.User) error

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*authDomain.User, error)

	// ExistsByEmail reports whether a user with the email is registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// AuthUseCase defines the credential issuance flow and per-request token authentication.
type AuthUseCase interface {
	// Register creates a user and returns a token for it.
	//
	// Returns ErrIdentityTaken if the email exists; nothing is written in that case.
	// An absent or unrecognized role resolves to USER.
	Register(ctx context.Context, input *authDomain.RegisterInput) (*authDomain.AuthOutput, error)

	// Login verifies credentials and returns a token carrying the stored role.
	//
	// Returns ErrIdentityNotFound for unknown emails and ErrInvalidCredentials on a
	// password mismatch. Both map to the same 401 response.
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.AuthOutput, error)

	// Authenticate resolves a bearer token into the request's authentication state.
	// It always returns a usable state: Anonymous accompanies every error.
	// The principal carries the role parsed from the token, not the stored one.
	Authenticate(ctx context.Context, token string) (authDomain.Authentication, error)
}

// UserUseCase defines operator-driven user management used by the CLI.
type UserUseCase interface {
	// Create registers a user with an explicit role. When input.Password is empty a
	// random password is generated and returned once in the output.
	Create(ctx context.Context, input *authDomain.CreateUserInput) (*authDomain.CreateUserOutput, error)

	// EnsureUser creates the user unless the email already exists.
	// Returns true when a user was created.
	EnsureUser(ctx context.Context, email, password string, role authDomain.Role) (bool, error)
}
