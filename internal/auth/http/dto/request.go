// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
	customValidation "github.com/allisson/catalog/internal/validation"
)

// Field limits shared by the register and login requests.
const (
	MaxEmailLength    = 320
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// RegisterRequest contains the parameters for creating a user.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // request field
	Role     string `json:"role"`
}

// Validate checks if the register request is valid.
// Role is deliberately unchecked: unrecognized values resolve to USER.
func (r *RegisterRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
			validation.RuneLength(1, MaxEmailLength),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.RuneLength(MinPasswordLength, MaxPasswordLength),
		),
	)
}

// ToDomain converts the request into use case input.
func (r *RegisterRequest) ToDomain() *authDomain.RegisterInput {
	return &authDomain.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

// LoginRequest contains the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"` //nolint:gosec // request field
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required,
			customValidation.NotBlank,
			customValidation.Email,
			validation.RuneLength(1, MaxEmailLength),
		),
		validation.Field(&r.Password,
			validation.Required,
		),
	)
}

// ToDomain converts the request into use case input.
func (r *LoginRequest) ToDomain() *authDomain.LoginInput {
	return &authDomain.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}
