// Package repository implements data persistence for registered users.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
// PostgreSQL uses native UUID types, MySQL uses BINARY(16) types.
package repository

import (
	"context"
	"database/sql"
	"errors"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
	"github.com/allisson/catalog/internal/database"
	apperrors "github.com/allisson/catalog/internal/errors"
)

// PostgreSQLUserRepository implements User persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new User. A duplicate email yields authDomain.ErrIdentityTaken.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *authDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO users (id, email, password_hash, role, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
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
func (p *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, email, password_hash, role, created_at FROM users WHERE email = $1`

	var user authDomain.User
	var role string

	err := querier.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
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

	user.Role = authDomain.Role(role)
	return &user, nil
}

// ExistsByEmail reports whether a user with email is registered.
func (p *PostgreSQLUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check user existence")
	}
	return exists, nil
}

// NewPostgreSQLUserRepository creates a new PostgreSQL User repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}
