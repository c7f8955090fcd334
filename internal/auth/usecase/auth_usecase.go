// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
	authService "github.com/allisson/catalog/internal/auth/service"
	"github.com/allisson/catalog/internal/database"
)

// authUseCase implements AuthUseCase.
type authUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	passwordService authService.PasswordService
	tokenService    authService.TokenService
	tokenTTL        time.Duration
}

// Register creates a user and issues its first token.
//
// The existence check and insert run in one transaction; the unique index on
// users.email still catches concurrent registrations, which the repository
// reports as ErrIdentityTaken.
func (a *authUseCase) Register(
	ctx context.Context,
	input *authDomain.RegisterInput,
) (*authDomain.AuthOutput, error) {
	user := &authDomain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     input.Email,
		Role:      authDomain.ResolveRole(input.Role),
		CreatedAt: time.Now().UTC(),
	}

	err := a.txManager.WithTx(ctx, func(ctx context.Context) error {
		exists, err := a.userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return err
		}
		if exists {
			return authDomain.ErrIdentityTaken
		}

		hashed, err := a.passwordService.HashPassword(input.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hashed

		return a.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return a.issue(user)
}

// Login verifies the password and issues a token carrying the stored role.
func (a *authUseCase) Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.AuthOutput, error) {
	user, err := a.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			return nil, authDomain.ErrIdentityNotFound
		}
		return nil, err
	}

	if !a.passwordService.ComparePassword(input.Password, user.PasswordHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	return a.issue(user)
}

// Authenticate parses token and confirms its subject is still registered.
func (a *authUseCase) Authenticate(ctx context.Context, token string) (authDomain.Authentication, error) {
	claims, err := a.tokenService.Parse(token)
	if err != nil {
		return authDomain.Anonymous{}, err
	}

	if _, err := a.userRepo.GetByEmail(ctx, claims.Subject); err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			return authDomain.Anonymous{}, authDomain.ErrIdentityNotFound
		}
		return authDomain.Anonymous{}, err
	}

	return authDomain.Authenticated{
		Principal: authDomain.Principal{
			Identity: claims.Subject,
			Role:     claims.Role,
		},
	}, nil
}

func (a *authUseCase) issue(user *authDomain.User) (*authDomain.AuthOutput, error) {
	token, err := a.tokenService.Issue(user.Email, user.Role, a.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &authDomain.AuthOutput{
		AccessToken:      token,
		TokenType:        authDomain.TokenType,
		ExpiresInSeconds: int64(a.tokenTTL / time.Second),
		Role:             user.Role,
	}, nil
}

// NewAuthUseCase creates a new AuthUseCase issuing tokens valid for tokenTTL.
func NewAuthUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordService authService.PasswordService,
	tokenService authService.TokenService,
	tokenTTL time.Duration,
) AuthUseCase {
	return &authUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		tokenTTL:        tokenTTL,
	}
}
