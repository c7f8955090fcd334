package repository

import (
	"context"
	"database/sql"
	"errors"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
	"github.com/allisson/catalog/internal/database"
	apperrors "github.com/allisson/catalog/internal/errors"
)

// MySQLUserRepository implements User persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new User using BINARY(16) for the id. A duplicate email yields
// authDomain.ErrIdentityTaken.
func (m *MySQLUserRepository) Create(ctx context.Context, user *authDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO users (id, email, password_hash, role, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		user.Email,
		user.PasswordHash,
		user.Role.String(),
		user.CreatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return authDomain.ErrIdentityTaken
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByEmail retrieves a User by email. Returns authDomain.ErrUserNotFound if absent.
func (m *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, email, password_hash, role, created_at FROM users WHERE email = ?`

	var user authDomain.User
	var idBytes []byte
	var role string

	err := querier.QueryRowContext(ctx, query, email).Scan(
		&idBytes,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user id")
	}

	user.Role = authDomain.Role(role)
	return &user, nil
}

// ExistsByEmail reports whether a user with email is registered.
func (m *MySQLUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check user existence")
	}
	return exists, nil
}

// NewMySQLUserRepository creates a new MySQL User repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}
