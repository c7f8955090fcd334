package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	apperrors "github.com/allisson/catalog/internal/errors"
)

// Sanitize trims free-text input and rejects values that could carry markup or
// terminal control sequences. A blank optional value yields "" and no error.
// Violations are ErrInvalidInput with a client-facing message naming the field.
func Sanitize(value, fieldName string, maxLen int, required bool) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			return "", apperrors.NewDetailedf(
				apperrors.ErrInvalidInput,
				"%s is required and cannot be blank",
				fieldName,
			)
		}
		return "", nil
	}

	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", apperrors.NewDetailedf(
			apperrors.ErrInvalidInput,
			"%s exceeds maximum length of %d",
			fieldName,
			maxLen,
		)
	}

	if strings.ContainsAny(trimmed, "<>") {
		return "", apperrors.NewDetailedf(
			apperrors.ErrInvalidInput,
			"%s contains invalid characters (HTML tags not allowed)",
			fieldName,
		)
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return "", apperrors.NewDetailedf(
				apperrors.ErrInvalidInput,
				"%s contains restricted control characters",
				fieldName,
			)
		}
	}

	return trimmed, nil
}
