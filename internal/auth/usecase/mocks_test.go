package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
)

// mockTxManager runs fn inline unless an error is configured.
type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *authDomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) GeneratePassword() (string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockPasswordService) HashPassword(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) ComparePassword(plainPassword string, passwordHash string) bool {
	args := m.Called(plainPassword, passwordHash)
	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Issue(identity string, role authDomain.Role, ttl time.Duration) (string, error) {
	args := m.Called(identity, role, ttl)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Parse(token string) (*authDomain.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Claims), args.Error(1)
}

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}
