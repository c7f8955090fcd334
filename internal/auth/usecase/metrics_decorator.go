package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
	"github.com/allisson/catalog/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
// Authenticate runs on every request and is left uninstrumented; the HTTP
// metrics already cover it.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for registration operations.
func (a *authUseCaseWithMetrics) Register(
	ctx context.Context,
	input *authDomain.RegisterInput,
) (*authDomain.AuthOutput, error) {
	start := time.Now()
	output, err := a.next.Register(ctx, input)
	metrics.Observe(ctx, a.metrics, metrics.DomainAuth, "register", start, err)

	return output, err
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.AuthOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)
	metrics.Observe(ctx, a.metrics, metrics.DomainAuth, "login", start, err)

	return output, err
}

// Authenticate delegates without recording.
func (a *authUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	token string,
) (authDomain.Authentication, error) {
	return a.next.Authenticate(ctx, token)
}
