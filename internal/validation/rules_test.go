package validation

import (
	"errors"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/catalog/internal/errors"
)

func TestEmailValidation(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		shouldErr bool
	}{
		{
			name:      "valid email",
			email:     "user@example.com",
			shouldErr: false,
		},
		{
			name:      "valid email with subdomain",
			email:     "user@mail.example.com",
			shouldErr: false,
		},
		{
			name:      "valid email with plus",
			email:     "user+tag@example.com",
			shouldErr: false,
		},
		{
			name:      "demo admin",
			email:     "admin@demo.com",
			shouldErr: false,
		},
		{
			name:      "invalid - no @",
			email:     "userexample.com",
			shouldErr: true,
		},
		{
			name:      "invalid - no domain",
			email:     "user@",
			shouldErr: true,
		},
		{
			name:      "invalid - no local part",
			email:     "@example.com",
			shouldErr: true,
		},
		{
			name:      "invalid - no TLD",
			email:     "user@example",
			shouldErr: true,
		},
		{
			name:      "invalid - spaces",
			email:     "user @example.com",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email.Validate(tt.email)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		shouldErr bool
	}{
		{
			name:      "valid string",
			input:     "validstring",
			shouldErr: false,
		},
		{
			name:      "only spaces",
			input:     "   ",
			shouldErr: true,
		},
		{
			name:      "mixed whitespace",
			input:     " \t\n ",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps validation error", func(t *testing.T) {
		result := WrapValidationError(assert.AnError)
		require.Error(t, result)
		assert.True(t, errors.Is(result, apperrors.ErrInvalidInput))
		assert.True(t, errors.Is(result, assert.AnError))
		assert.Contains(t, result.Error(), "invalid input")
	})
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *loginInput) validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

func TestFieldErrors(t *testing.T) {
	t.Run("struct violations sorted by field", func(t *testing.T) {
		input := &loginInput{Email: "not-an-email", Password: "short"}

		fieldErrors := FieldErrors(WrapValidationError(input.validate()))

		require.Len(t, fieldErrors, 2)
		assert.Equal(t, "email", fieldErrors[0].Field)
		assert.Equal(t, "must be a valid email address", fieldErrors[0].Message)
		assert.Equal(t, "password", fieldErrors[1].Field)
		assert.NotEmpty(t, fieldErrors[1].Message)
	})

	t.Run("nested errors use dotted paths", func(t *testing.T) {
		err := validation.Errors{
			"owner": validation.Errors{
				"email": errors.New("cannot be blank"),
			},
			"name": errors.New("cannot be blank"),
			"skip": nil,
		}

		fieldErrors := FieldErrors(err)

		assert.Equal(t, []FieldError{
			{Field: "name", Message: "cannot be blank"},
			{Field: "owner.email", Message: "cannot be blank"},
		}, fieldErrors)
	})

	t.Run("non validation error", func(t *testing.T) {
		assert.Nil(t, FieldErrors(assert.AnError))
		assert.Nil(t, FieldErrors(nil))
	})
}

func TestBase64(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{value: "", wantErr: false},
		{value: "c2VjcmV0", wantErr: false},
		{value: "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY=", wantErr: false},
		{value: "not base64!", wantErr: true},
		{value: "c2VjcmV0=", wantErr: true},
	}

	for _, tt := range tests {
		err := validation.Validate(tt.value, Base64)
		if tt.wantErr {
			assert.Error(t, err, "value %q", tt.value)
		} else {
			assert.NoError(t, err, "value %q", tt.value)
		}
	}
}
