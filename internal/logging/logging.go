// Package logging carries the per-request trace id through context.Context and
// attaches it to every slog record emitted with that context.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// TraceIDKey is the attribute name used for the trace id in log records.
const TraceIDKey = "trace_id"

type traceIDKey struct{}

// WithTraceID returns a copy of ctx carrying the given trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceID returns the trace id stored in ctx, or an empty string.
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(traceIDKey{}).(string)
	return traceID
}

// ContextHandler decorates a slog.Handler and adds the trace id found in the
// record's context.
type ContextHandler struct {
	slog.Handler
}

// NewContextHandler wraps next.
func NewContextHandler(next slog.Handler) *ContextHandler {
	return &ContextHandler{Handler: next}
}

// Handle adds trace_id when present and delegates to the wrapped handler.
func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if traceID := TraceID(ctx); traceID != "" {
		record.AddAttrs(slog.String(TraceIDKey, traceID))
	}
	return h.Handler.Handle(ctx, record)
}

// WithAttrs keeps the decorator in place for derived loggers.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup keeps the decorator in place for derived loggers.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// ParseLevel converts a config log level into a slog.Level. Unknown values fall back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds the application logger: JSON records on w, decorated with the trace id.
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(NewContextHandler(handler))
}
