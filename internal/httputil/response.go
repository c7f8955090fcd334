// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/catalog/internal/errors"
	"github.com/allisson/catalog/internal/logging"
	"github.com/allisson/catalog/internal/validation"
)

// Client-facing messages for the fixed failure modes.
const (
	MessageUnauthorized    = "Unauthorized"
	MessageForbidden       = "Forbidden"
	MessageNotFound        = "Resource not found"
	MessageValidation      = "Validation failed"
	MessageMalformedJSON   = "Malformed JSON request"
	MessageTooManyRequests = "Too many requests"
	MessageInternal        = "Internal server error"
)

// ErrorResponse is the uniform error envelope written for every failing request.
type ErrorResponse struct {
	Timestamp   time.Time               `json:"timestamp"`
	Status      int                     `json:"status"`
	Error       string                  `json:"error"`
	Message     string                  `json:"message"`
	Path        string                  `json:"path"`
	TraceID     string                  `json:"traceId"`
	FieldErrors []validation.FieldError `json:"fieldErrors"`
}

// NewErrorResponse builds the envelope for the current request.
func NewErrorResponse(
	c *gin.Context,
	status int,
	message string,
	fieldErrors []validation.FieldError,
) ErrorResponse {
	return ErrorResponse{
		Timestamp:   time.Now().UTC(),
		Status:      status,
		Error:       http.StatusText(status),
		Message:     message,
		Path:        c.Request.URL.Path,
		TraceID:     logging.TraceID(c.Request.Context()),
		FieldErrors: fieldErrors,
	}
}

// WriteErrorGin writes the envelope and aborts the handler chain.
// Every error path in the service ends here.
func WriteErrorGin(c *gin.Context, status int, message string, fieldErrors []validation.FieldError) {
	c.AbortWithStatusJSON(status, NewErrorResponse(c, status, message, fieldErrors))
}

// HandleErrorGin maps domain errors to HTTP status codes and writes the error envelope.
// A DetailedError anywhere in the chain supplies the client message; otherwise a fixed
// message per status is used so internal details never leak.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var message string
	var fieldErrors []validation.FieldError

	switch {
	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = MessageNotFound

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		fieldErrors = validation.FieldErrors(err)
		if fieldErrors != nil {
			message = MessageValidation
		} else {
			message = "Invalid input"
		}

	case apperrors.Is(err, apperrors.ErrConflict):
		statusCode = http.StatusConflict
		message = "A conflict occurred with existing data"

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		message = MessageUnauthorized

	case apperrors.Is(err, apperrors.ErrForbidden):
		statusCode = http.StatusForbidden
		message = MessageForbidden

	case apperrors.Is(err, apperrors.ErrTooManyRequests):
		statusCode = http.StatusTooManyRequests
		message = MessageTooManyRequests

	default:
		// For unknown/internal errors, don't expose details to the client
		statusCode = http.StatusInternalServerError
		message = MessageInternal
	}

	if statusCode != http.StatusInternalServerError && fieldErrors == nil {
		if detail, ok := apperrors.Detail(err); ok {
			message = detail
		}
	}

	if logger != nil {
		ctx := c.Request.Context()
		attrs := []any{
			slog.Int("status_code", statusCode),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		}
		if statusCode >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "request failed", attrs...)
		} else {
			logger.WarnContext(ctx, "request rejected", attrs...)
		}
	}

	WriteErrorGin(c, statusCode, message, fieldErrors)
}

// HandleBadRequestGin writes a 400 response for bodies or parameters that could not be decoded.
// The decoder error is logged but never echoed to the client.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.WarnContext(c.Request.Context(), "bad request", slog.Any("error", err))
	}

	WriteErrorGin(c, http.StatusBadRequest, MessageMalformedJSON, nil)
}

// HandleValidationErrorGin writes a 400 response listing the violated fields.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.WarnContext(c.Request.Context(), "validation failed", slog.Any("error", err))
	}

	fieldErrors := validation.FieldErrors(err)
	if fieldErrors == nil {
		fieldErrors = []validation.FieldError{}
	}

	WriteErrorGin(c, http.StatusBadRequest, MessageValidation, fieldErrors)
}

// HandleUnauthorizedGin writes the 401 envelope used by the authorization gate.
func HandleUnauthorizedGin(c *gin.Context) {
	WriteErrorGin(c, http.StatusUnauthorized, MessageUnauthorized, nil)
}

// HandleForbiddenGin writes the 403 envelope used by the authorization gate.
func HandleForbiddenGin(c *gin.Context) {
	WriteErrorGin(c, http.StatusForbidden, MessageForbidden, nil)
}
