package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// migrationsPath returns the migration source for the given database driver.
func migrationsPath(driver string) string {
	if driver == "mysql" {
		return "file://migrations/mysql"
	}
	return "file://migrations/postgresql"
}

// RunMigrations applies all pending migrations for the users and products tables.
// Returns nil when the schema is already up to date.
func RunMigrations(logger *slog.Logger, driver, connectionString string) error {
	logger.Info("running database migrations", slog.String("driver", driver))

	m, err := migrate.New(migrationsPath(driver), connectionString)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
