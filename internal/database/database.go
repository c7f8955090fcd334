// Package database provides connection management, transactions and driver error
// classification for the PostgreSQL and MySQL backends.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

const (
	// DriverPostgres is the database/sql name registered by lib/pq.
	DriverPostgres = "postgres"
	// DriverMySQL is the database/sql name registered by go-sql-driver/mysql.
	DriverMySQL = "mysql"

	defaultPingTimeout = 5 * time.Second
)

// Config holds database configuration settings.
type Config struct {
	Driver             string
	ConnectionString   string
	MaxOpenConnections int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
	// PingTimeout bounds the startup connectivity check. Zero means five seconds.
	PingTimeout time.Duration
}

// IsSupportedDriver reports whether driver has repositories and migrations.
func IsSupportedDriver(driver string) bool {
	return driver == DriverPostgres || driver == DriverMySQL
}

// Connect opens a pool for cfg and verifies it with a bounded ping.
// The pool is closed again when the ping fails.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	if !IsSupportedDriver(cfg.Driver) {
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}

	db, err := sql.Open(cfg.Driver, cfg.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
