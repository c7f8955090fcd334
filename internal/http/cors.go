package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// createCORSMiddleware builds the browser origin allow-list used by the demo SPA
// (http://localhost:5173 by default). It returns nil when CORS is disabled or
// no usable origin remains after parsing.
//
// Entries that are not absolute http(s) origins are dropped with a warning.
// Credentials are allowed, so the wildcard "*" is rejected as well.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins := make([]string, 0)
	for _, origin := range parseOrigins(allowOriginsStr) {
		if !isValidOrigin(origin) {
			logger.Warn("ignoring invalid CORS origin", slog.String("origin", origin))
			continue
		}
		origins = append(origins, origin)
	}

	if len(origins) == 0 {
		logger.Warn("CORS enabled but no valid origins configured, CORS will not be applied")
		return nil
	}

	logger.Info("CORS enabled", slog.Any("origins", origins))

	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{TraceIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// parseOrigins splits a comma-separated list and drops blank entries.
func parseOrigins(originsStr string) []string {
	if originsStr == "" {
		return nil
	}

	parts := strings.Split(originsStr, ",")
	origins := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

// isValidOrigin accepts scheme://host[:port] with an http or https scheme and nothing else.
func isValidOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != "" && (u.Path == "" || u.Path == "/") && u.RawQuery == "" && u.Fragment == "" && u.User == nil
}
