// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	authDomain "github.com/allisson/catalog/internal/auth/domain"
)

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AccessToken      string `json:"accessToken"` //nolint:gosec // returned to the token holder
	TokenType        string `json:"tokenType"`
	ExpiresInSeconds int64  `json:"expiresInSeconds"`
	Role             string `json:"role"`
}

// MapAuthOutputToResponse converts use case output to an API response.
func MapAuthOutputToResponse(output *authDomain.AuthOutput) AuthResponse {
	return AuthResponse{
		AccessToken:      output.AccessToken,
		TokenType:        output.TokenType,
		ExpiresInSeconds: output.ExpiresInSeconds,
		Role:             output.Role.String(),
	}
}
