package http

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/catalog/internal/httputil"
	"github.com/allisson/catalog/internal/logging"
)

// TraceIDHeader carries the per-request trace id on every response.
const TraceIDHeader = "X-Trace-Id"

// newTraceID returns a random UUID rendered as 32 hex characters.
func newTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// TraceIDMiddleware assigns a fresh trace id to each request, echoes it in the
// X-Trace-Id response header and stores it in the request context for logging
// and error envelopes. Client supplied X-Trace-Id values are discarded.
//
// The id lives in the request context only, so it is gone once the request ends.
func TraceIDMiddleware() gin.HandlerFunc {
	assign := requestid.New(
		requestid.WithCustomHeaderStrKey(requestid.HeaderStrKey(TraceIDHeader)),
		requestid.WithGenerator(newTraceID),
		requestid.WithHandler(func(c *gin.Context, traceID string) {
			c.Request = c.Request.WithContext(logging.WithTraceID(c.Request.Context(), traceID))
		}),
	)

	return func(c *gin.Context) {
		c.Request.Header.Del(TraceIDHeader)
		assign(c)
	}
}

// CustomLoggerMiddleware logs one record per request after the handler chain finishes.
// The record is emitted through the request context so it carries the trace id.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if query != "" {
			attrs = append(attrs, slog.String("query", query))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		logger.InfoContext(c.Request.Context(), "http request", attrs...)
	}
}

// RecoveryMiddleware turns a handler panic into a 500 error envelope. The panic
// value and stack are logged through logger, so the record carries the trace id
// when TraceIDMiddleware ran first.
func RecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.ErrorContext(c.Request.Context(), "panic recovered",
			slog.Any("error", recovered),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("stack", string(debug.Stack())),
		)
		httputil.WriteErrorGin(c, http.StatusInternalServerError, httputil.MessageInternal, nil)
	})
}
