// Package mocks provides mock implementations of auth use cases for CLI command tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
)

// MockUserUseCase is a mock implementation of UserUseCase.
type MockUserUseCase struct {
	mock.Mock
}

// Create mocks the Create method of UserUseCase.
func (m *MockUserUseCase) Create(
	ctx context.Context,
	input *authDomain.CreateUserInput,
) (*authDomain.CreateUserOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.CreateUserOutput), args.Error(1)
}

// EnsureUser mocks the EnsureUser method of UserUseCase.
func (m *MockUserUseCase) EnsureUser(
	ctx context.Context,
	email, password string,
	role authDomain.Role,
) (bool, error) {
	args := m.Called(ctx, email, password, role)
	return args.Bool(0), args.Error(1)
}
