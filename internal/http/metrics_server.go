package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/catalog/internal/httputil"
	"github.com/allisson/catalog/internal/metrics"
)

// MetricsServer serves /metrics and a liveness probe on a separate port. The
// authorization gate is not installed here, so the port must stay private.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer creates a MetricsServer exposing provider's registry.
func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	provider *metrics.Provider,
) *MetricsServer {
	router := gin.New()
	router.Use(TraceIDMiddleware())
	router.Use(CustomLoggerMiddleware(logger))
	router.Use(RecoveryMiddleware(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	if provider != nil {
		router.GET("/metrics", gin.WrapH(provider.Handler()))
	}
	router.NoRoute(func(c *gin.Context) {
		httputil.WriteErrorGin(c, http.StatusNotFound, httputil.MessageNotFound, nil)
	})

	return &MetricsServer{
		server: newHTTPServer(host, port, router),
		logger: logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start blocks serving scrapes until Shutdown.
func (s *MetricsServer) Start(ctx context.Context) error {
	return serve(s.server, s.logger, "metrics server")
}

// Shutdown gracefully shuts down the metrics HTTP server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}
