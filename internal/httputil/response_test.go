package httputil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/catalog/internal/errors"
	"github.com/allisson/catalog/internal/logging"
	appValidation "github.com/allisson/catalog/internal/validation"
)

func newTestContext(t *testing.T, path string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	c.Request = req.WithContext(logging.WithTraceID(req.Context(), "0123456789abcdef0123456789abcdef"))
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var envelope ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "not found uses detail",
			err:             apperrors.NewDetailed(apperrors.ErrNotFound, "Product not found with id: 42"),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Product not found with id: 42",
		},
		{
			name:            "not found without detail",
			err:             apperrors.ErrNotFound,
			expectedStatus:  http.StatusNotFound,
			expectedMessage: MessageNotFound,
		},
		{
			name:            "invalid input with detail",
			err:             apperrors.Wrap(apperrors.NewDetailed(apperrors.ErrInvalidInput, "Email already in use"), "register"),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Email already in use",
		},
		{
			name:            "conflict",
			err:             apperrors.ErrConflict,
			expectedStatus:  http.StatusConflict,
			expectedMessage: "A conflict occurred with existing data",
		},
		{
			name:            "unauthorized with detail",
			err:             apperrors.NewDetailed(apperrors.ErrUnauthorized, "Invalid credentials"),
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid credentials",
		},
		{
			name:            "forbidden",
			err:             apperrors.ErrForbidden,
			expectedStatus:  http.StatusForbidden,
			expectedMessage: MessageForbidden,
		},
		{
			name:            "too many requests",
			err:             apperrors.ErrTooManyRequests,
			expectedStatus:  http.StatusTooManyRequests,
			expectedMessage: MessageTooManyRequests,
		},
		{
			name:            "unclassified error hides details",
			err:             apperrors.New("pq: connection refused"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: MessageInternal,
		},
		{
			name:            "detail on unclassified error is ignored",
			err:             apperrors.NewDetailed(apperrors.New("boom"), "secret detail"),
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: MessageInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t, "/catalog/42")

			HandleErrorGin(c, tt.err, testLogger())

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, c.IsAborted())

			envelope := decodeEnvelope(t, w)
			assert.Equal(t, tt.expectedStatus, envelope.Status)
			assert.Equal(t, http.StatusText(tt.expectedStatus), envelope.Error)
			assert.Equal(t, tt.expectedMessage, envelope.Message)
			assert.Equal(t, "/catalog/42", envelope.Path)
			assert.Equal(t, "0123456789abcdef0123456789abcdef", envelope.TraceID)
			assert.False(t, envelope.Timestamp.IsZero())
			assert.Nil(t, envelope.FieldErrors)
		})
	}
}

func TestHandleErrorGin_NilError(t *testing.T) {
	c, w := newTestContext(t, "/")

	HandleErrorGin(c, nil, testLogger())

	assert.False(t, c.IsAborted())
	assert.Zero(t, w.Body.Len())
}

func TestHandleErrorGin_WrappedValidationErrors(t *testing.T) {
	c, w := newTestContext(t, "/catalog")

	err := appValidation.WrapValidationError(validation.Errors{
		"price": validation.NewError("validation_min", "must be greater than 0"),
		"name":  validation.NewError("validation_required", "cannot be blank"),
	})
	HandleErrorGin(c, err, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, MessageValidation, envelope.Message)
	assert.Equal(t, []appValidation.FieldError{
		{Field: "name", Message: "cannot be blank"},
		{Field: "price", Message: "must be greater than 0"},
	}, envelope.FieldErrors)
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext(t, "/auth/login")

	HandleBadRequestGin(c, apperrors.New("invalid character '}' looking for beginning of value"), testLogger())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	assert.Equal(t, "Bad Request", envelope.Error)
	assert.Equal(t, MessageMalformedJSON, envelope.Message)
	assert.NotContains(t, w.Body.String(), "invalid character")
}

func TestHandleValidationErrorGin(t *testing.T) {
	t.Run("lists field violations", func(t *testing.T) {
		c, w := newTestContext(t, "/auth/register")

		err := validation.Errors{
			"password": validation.NewError("validation_length_out_of_range", "the length must be between 8 and 72"),
			"email":    validation.NewError("validation_email_format", "must be a valid email address"),
		}
		HandleValidationErrorGin(c, err, testLogger())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, MessageValidation, envelope.Message)
		require.Len(t, envelope.FieldErrors, 2)
		assert.Equal(t, "email", envelope.FieldErrors[0].Field)
		assert.Equal(t, "password", envelope.FieldErrors[1].Field)
	})

	t.Run("non structured error yields empty list", func(t *testing.T) {
		c, w := newTestContext(t, "/auth/register")

		HandleValidationErrorGin(c, assert.AnError, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, "[]", string(extractField(t, w, "fieldErrors")))
	})
}

func TestHandleUnauthorizedAndForbiddenGin(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		c, w := newTestContext(t, "/catalog")

		HandleUnauthorizedGin(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "Unauthorized", envelope.Error)
		assert.Equal(t, "Unauthorized", envelope.Message)
		assert.JSONEq(t, "null", string(extractField(t, w, "fieldErrors")))
	})

	t.Run("forbidden", func(t *testing.T) {
		c, w := newTestContext(t, "/catalog")

		HandleForbiddenGin(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "Forbidden", envelope.Error)
		assert.Equal(t, "Forbidden", envelope.Message)
	})
}

func extractField(t *testing.T, w *httptest.ResponseRecorder, field string) json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	value, ok := raw[field]
	require.True(t, ok, "field %s missing from envelope", field)
	return value
}
