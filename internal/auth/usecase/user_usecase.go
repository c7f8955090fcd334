package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
	authService "github.com/allisson/catalog/internal/auth/service"
	"github.com/allisson/catalog/internal/database"
	apperrors "github.com/allisson/catalog/internal/errors"
)

// userUseCase implements UserUseCase for operator-driven user management.
type userUseCase struct {
	txManager       database.TxManager
	userRepo        UserRepository
	passwordService authService.PasswordService
}

// Create persists a new user. If no password is supplied one is generated and
// returned once in PlainPassword. Unknown roles are rejected.
func (u *userUseCase) Create(
	ctx context.Context,
	input *authDomain.CreateUserInput,
) (*authDomain.CreateUserOutput, error) {
	if !input.Role.IsKnown() {
		return nil, apperrors.NewDetailedf(apperrors.ErrInvalidInput, "unknown role %q", input.Role)
	}

	var plainPassword, hashed string
	var err error
	if input.Password == "" {
		plainPassword, hashed, err = u.passwordService.GeneratePassword()
	} else {
		hashed, err = u.passwordService.HashPassword(input.Password)
	}
	if err != nil {
		return nil, err
	}

	user := &authDomain.User{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        input.Email,
		PasswordHash: hashed,
		Role:         input.Role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &authDomain.CreateUserOutput{
		ID:            user.ID,
		Email:         user.Email,
		Role:          user.Role,
		PlainPassword: plainPassword,
	}, nil
}

// EnsureUser creates the user in a transaction unless the email is already registered.
func (u *userUseCase) EnsureUser(
	ctx context.Context,
	email, password string,
	role authDomain.Role,
) (bool, error) {
	created := false

	err := u.txManager.WithTx(ctx, func(ctx context.Context) error {
		exists, err := u.userRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}

		if _, err := u.Create(ctx, &authDomain.CreateUserInput{
			Email:    email,
			Password: password,
			Role:     role,
		}); err != nil {
			return err
		}

		created = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return created, nil
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(
	txManager database.TxManager,
	userRepo UserRepository,
	passwordService authService.PasswordService,
) UserUseCase {
	return &userUseCase{
		txManager:       txManager,
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}
