// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"sort"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/catalog/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// FieldError is a single field violation reported back to API clients.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
// The original error stays in the chain so FieldErrors can recover the per-field violations.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
}

// FieldErrors extracts per-field violations from err, sorted by field name.
// Nested validation.Errors are flattened with dotted field paths.
// It returns nil when err carries no validation.Errors.
func FieldErrors(err error) []FieldError {
	var errs validation.Errors
	if !apperrors.As(err, &errs) {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(errs))
	flatten("", errs, &fieldErrors)

	sort.Slice(fieldErrors, func(i, j int) bool {
		return fieldErrors[i].Field < fieldErrors[j].Field
	})

	return fieldErrors
}

func flatten(prefix string, errs validation.Errors, out *[]FieldError) {
	for field, fieldErr := range errs {
		if fieldErr == nil {
			continue
		}
		name := field
		if prefix != "" {
			name = prefix + "." + field
		}

		var nested validation.Errors
		if apperrors.As(fieldErr, &nested) {
			flatten(name, nested, out)
			continue
		}

		*out = append(*out, FieldError{Field: name, Message: fieldErr.Error()})
	}
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// Base64 validates that a string decodes as standard, padded base64.
var Base64 = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := base64.StdEncoding.DecodeString(s)
		return err == nil
	},
	validation.NewError("validation_base64", "must be valid base64-encoded data"),
)
