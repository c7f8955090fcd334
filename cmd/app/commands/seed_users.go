package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
	authUseCase "github.com/allisson/catalog/internal/auth/usecase"
)

const (
	// DefaultAdminPassword is the demo password for admin@demo.com.
	DefaultAdminPassword = "Admin123!" //nolint:gosec // demo credential
	// DefaultUserPassword is the demo password for user@demo.com.
	DefaultUserPassword = "User123!" //nolint:gosec // demo credential

	adminEmail = "admin@demo.com"
	userEmail  = "user@demo.com"
)

// RunSeedUsers creates the demo ADMIN and USER accounts. Accounts whose email is
// already registered are left untouched, so the command is safe to run on every deploy.
func RunSeedUsers(
	ctx context.Context,
	userUseCase authUseCase.UserUseCase,
	logger *slog.Logger,
	writer io.Writer,
	adminPassword string,
	userPassword string,
) error {
	seeds := []struct {
		email    string
		password string
		role     authDomain.Role
	}{
		{email: adminEmail, password: adminPassword, role: authDomain.RoleAdmin},
		{email: userEmail, password: userPassword, role: authDomain.RoleUser},
	}

	for _, seed := range seeds {
		created, err := userUseCase.EnsureUser(ctx, seed.email, seed.password, seed.role)
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", seed.email, err)
		}

		if created {
			logger.Info("seeded user", slog.String("email", seed.email), slog.String("role", seed.role.String()))
			_, _ = fmt.Fprintf(writer, "Seeded %s user: %s\n", seed.role, seed.email)
			continue
		}

		logger.Debug("user already exists", slog.String("email", seed.email))
		_, _ = fmt.Fprintf(writer, "Skipped existing user: %s\n", seed.email)
	}

	return nil
}
