package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/allisson/catalog/internal/app"
	"github.com/allisson/catalog/internal/config"
)

// shutdownTimeout bounds how long in-flight requests get to drain.
const shutdownTimeout = 30 * time.Second

// RunServer starts the HTTP server, and the metrics server when enabled, with
// graceful shutdown support. Blocks until receiving SIGINT/SIGTERM or until one
// of the servers fails, then shuts both down.
func RunServer(ctx context.Context, version string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	gin.SetMode(cfg.GetGinMode())

	container := app.NewContainer(cfg)

	logger := container.Logger()
	logger.Info("starting server",
		slog.String("version", version),
		slog.String("app_env", cfg.AppEnv),
		slog.Bool("production", cfg.IsProduction()),
	)

	defer closeContainer(container, logger)

	// Building the HTTP server resolves the token signing key, so an
	// undecodable JWT_SECRET fails here before anything listens.
	server, err := container.HTTPServer()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	metricsServer, err := container.MetricsServer()
	if err != nil {
		return fmt.Errorf("failed to initialize metrics server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Start(gctx); err != nil {
			return fmt.Errorf("api server error: %w", err)
		}
		return nil
	})

	if metricsServer != nil {
		g.Go(func() error {
			if err := metricsServer.Start(gctx); err != nil {
				return fmt.Errorf("metrics server error: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		var shutdownErrors []error

		if err := server.Shutdown(shutdownCtx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("api server shutdown: %w", err))
		}

		if metricsServer != nil {
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
			}
		}

		return errors.Join(shutdownErrors...)
	})

	return g.Wait()
}
