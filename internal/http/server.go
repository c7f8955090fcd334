// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
	authHTTP "github.com/allisson/catalog/internal/auth/http"
	authUseCase "github.com/allisson/catalog/internal/auth/usecase"
	catalogHTTP "github.com/allisson/catalog/internal/catalog/http"
	"github.com/allisson/catalog/internal/config"
	"github.com/allisson/catalog/internal/httputil"
	"github.com/allisson/catalog/internal/metrics"
)

// Server represents the HTTP server
type Server struct {
	db     *sql.DB
	server *http.Server
	logger *slog.Logger
	router *gin.Engine
	policy *authDomain.Policy
}

// NewServer creates a new HTTP server
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port, nil),
	}
}

// SetupRouter builds the gin engine. Engine level middleware runs for every request,
// unmatched paths included, in this order: trace id, request logging, recovery, CORS,
// HTTP metrics, authentication, authorization. The authorization gate therefore
// answers 401/403 before routing decides anything.
func (s *Server) SetupRouter(
	cfg *config.Config,
	authHandler *authHTTP.AuthHandler,
	productHandler *catalogHTTP.ProductHandler,
	authUseCase authUseCase.AuthUseCase,
	metricsProvider *metrics.Provider,
	metricsNamespace string,
) {
	router := gin.New()
	s.policy = authDomain.DefaultPolicy(cfg.IsProduction())

	router.Use(TraceIDMiddleware())
	router.Use(CustomLoggerMiddleware(s.logger))
	router.Use(RecoveryMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), metricsNamespace))
	}

	router.Use(authHTTP.AuthenticationMiddleware(authUseCase, s.logger))
	router.Use(authHTTP.AuthorizationMiddleware(s.policy, s.logger))

	router.NoRoute(func(c *gin.Context) {
		httputil.WriteErrorGin(c, http.StatusNotFound, httputil.MessageNotFound, nil)
	})

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	auth := router.Group("/auth")
	if cfg.RateLimitAuthEnabled {
		auth.Use(authHTTP.AuthRateLimitMiddleware(
			cfg.RateLimitAuthRequestsPerSec,
			cfg.RateLimitAuthBurst,
			s.logger,
		))
	}
	{
		auth.POST("/register", authHandler.RegisterHandler)
		auth.POST("/login", authHandler.LoginHandler)
	}

	catalog := router.Group("/catalog")
	if cfg.RateLimitEnabled {
		catalog.Use(authHTTP.RateLimitMiddleware(cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}
	{
		catalog.GET("", productHandler.ListHandler)
		catalog.POST("", productHandler.CreateHandler)
		catalog.GET("/:id", productHandler.GetHandler)
		catalog.PUT("/:id", productHandler.UpdateHandler)
		catalog.DELETE("/:id", productHandler.DeleteHandler)
	}

	router.GET("/docs/routes", s.routesHandler)

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server. SetupRouter must be called first.
func (s *Server) Start(ctx context.Context) error {
	if s.server.Handler == nil && s.router != nil {
		s.server.Handler = s.router
	}

	return serve(s.server, s.logger, "http server")
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	database := "ok"
	if s.db == nil {
		database = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.ErrorContext(c.Request.Context(), "database ping failed", slog.Any("error", err))
			database = "error"
		}
	}

	status, code := "ready", http.StatusOK
	if database != "ok" {
		status, code = "not_ready", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":     status,
		"components": gin.H{"database": database},
	})
}
