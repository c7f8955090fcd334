// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
)

// MockAuthUseCase is a mock implementation of AuthUseCase for testing.
type MockAuthUseCase struct {
	mock.Mock
}

// Register mocks the Register method of AuthUseCase.
func (m *MockAuthUseCase) Register(
	ctx context.Context,
	input *authDomain.RegisterInput,
) (*authDomain.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AuthOutput), args.Error(1)
}

// Login mocks the Login method of AuthUseCase.
func (m *MockAuthUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.AuthOutput), args.Error(1)
}

// Authenticate mocks the Authenticate method of AuthUseCase.
// A nil first return value is reported as Anonymous.
func (m *MockAuthUseCase) Authenticate(ctx context.Context, token string) (authDomain.Authentication, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return authDomain.Anonymous{}, args.Error(1)
	}
	return args.Get(0).(authDomain.Authentication), args.Error(1)
}
