package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenType is the scheme clients must use when presenting an access token.
const TokenType = "Bearer"

// User is a registered credential holder. Email is the unique identity.
type User struct {
	ID           uuid.UUID // Unique identifier (UUIDv7)
	Email        string
	PasswordHash string //nolint:gosec // hashed password (not plaintext)
	Role         Role
	CreatedAt    time.Time
}

// RegisterInput contains the parameters for creating a new user.
// Role is optional; unrecognized values resolve to USER.
type RegisterInput struct {
	Email    string
	Password string //nolint:gosec // plaintext only while in flight
	Role     string
}

// LoginInput contains the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string //nolint:gosec // plaintext only while in flight
}

// AuthOutput is the result of a successful register or login.
type AuthOutput struct {
	AccessToken      string
	TokenType        string
	ExpiresInSeconds int64
	Role             Role
}

// Claims are the decoded contents of a verified access token.
type Claims struct {
	Subject   string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// CreateUserInput contains the parameters for the operator create-user flow.
// An empty Password asks for a generated one.
type CreateUserInput struct {
	Email    string
	Password string //nolint:gosec // plaintext only while in flight
	Role     Role
}

// CreateUserOutput is returned by the operator create-user flow.
// PlainPassword is only shown once when it was generated.
type CreateUserOutput struct {
	ID            uuid.UUID
	Email         string
	Role          Role
	PlainPassword string //nolint:gosec // shown once to the operator
}
