// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
	authUseCase "github.com/allisson/catalog/internal/auth/usecase"
	apperrors "github.com/allisson/catalog/internal/errors"
	"github.com/allisson/catalog/internal/httputil"
)

const bearerPrefix = "bearer "

// bearerToken extracts the credential from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// AuthenticationMiddleware resolves the bearer token, if any, into the request's
// authentication state and stores it in the request context.
//
// The middleware never writes a response. A missing, malformed, invalid or expired
// token, or a token whose subject is no longer registered, leaves the request
// Anonymous; AuthorizationMiddleware decides whether that is acceptable for the route.
//
// Usage:
//
//	router.Use(AuthenticationMiddleware(authUseCase, logger))
//	router.Use(AuthorizationMiddleware(authDomain.DefaultPolicy(false), logger))
func AuthenticationMiddleware(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var auth authDomain.Authentication = authDomain.Anonymous{}

		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			resolved, err := authUseCase.Authenticate(ctx, token)
			switch {
			case err == nil:
				auth = resolved
			case errors.Is(err, apperrors.ErrUnauthorized):
				logger.DebugContext(ctx, "authentication failed", slog.String("error", err.Error()))
			default:
				logger.ErrorContext(ctx, "authentication lookup failed", slog.Any("error", err))
			}
		}

		if principal, ok := authDomain.PrincipalOf(auth); ok {
			logger.DebugContext(ctx, "authentication successful",
				slog.String("identity", principal.Identity),
				slog.String("role", principal.Role.String()))
		}

		c.Request = c.Request.WithContext(WithAuthentication(ctx, auth))
		c.Next()
	}
}

// AuthorizationMiddleware evaluates policy for the request method and path.
//
// It MUST run after AuthenticationMiddleware. Anonymous requests on a protected
// rule get a 401 envelope, principals lacking the rule's role get a 403 envelope.
// Both abort the chain.
func AuthorizationMiddleware(policy *authDomain.Policy, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		method := c.Request.Method
		path := c.Request.URL.Path

		decision := policy.Evaluate(method, path, GetAuthentication(ctx))

		switch decision {
		case authDomain.DecisionUnauthenticated:
			logger.DebugContext(ctx, "authorization failed: authentication required",
				slog.String("method", method),
				slog.String("path", path))
			httputil.HandleUnauthorizedGin(c)
			return
		case authDomain.DecisionForbidden:
			principal, _ := GetPrincipal(ctx)
			logger.DebugContext(ctx, "authorization failed: insufficient role",
				slog.String("identity", principal.Identity),
				slog.String("role", principal.Role.String()),
				slog.String("method", method),
				slog.String("path", path),
				slog.String("rule", policy.Match(method, path).Access.String()))
			httputil.HandleForbiddenGin(c)
			return
		}

		c.Next()
	}
}
