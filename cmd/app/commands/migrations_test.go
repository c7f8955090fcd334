package commands

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationsPath(t *testing.T) {
	for driver, want := range map[string]string{
		"mysql":    "file://migrations/mysql",
		"postgres": "file://migrations/postgresql",
		"":         "file://migrations/postgresql",
	} {
		assert.Equal(t, want, migrationsPath(driver), "driver %q", driver)
	}
}

func TestRunMigrations_BadTarget(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for name, dsn := range map[string]string{
		"unknown scheme":   "sqlite://catalog.db",
		"not a url at all": "catalog",
	} {
		t.Run(name, func(t *testing.T) {
			err := RunMigrations(logger, "postgres", dsn)
			assert.ErrorContains(t, err, "failed to create migrate instance")
		})
	}
}
