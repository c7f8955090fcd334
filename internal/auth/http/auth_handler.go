// Package http provides HTTP handlers for authentication operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/catalog/internal/auth/http/dto"
	authUseCase "github.com/allisson/catalog/internal/auth/usecase"
	"github.com/allisson/catalog/internal/httputil"
	customValidation "github.com/allisson/catalog/internal/validation"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// RegisterHandler creates a user and returns its first token.
// POST /auth/register - No authentication required.
// Returns 200 OK with the token, or 400 when the email is taken or the body is invalid.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.authUseCase.Register(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAuthOutputToResponse(output))
}

// LoginHandler exchanges credentials for a token.
// POST /auth/login - No authentication required.
// Returns 200 OK with the token, or 401 with the same message for unknown email and wrong password.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.authUseCase.Login(c.Request.Context(), req.ToDomain())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAuthOutputToResponse(output))
}
