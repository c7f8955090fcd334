package app

import (
	"context"
	"fmt"

	authHTTP "github.com/allisson/catalog/internal/auth/http"
	authRepository "github.com/allisson/catalog/internal/auth/repository"
	authService "github.com/allisson/catalog/internal/auth/service"
	authUseCase "github.com/allisson/catalog/internal/auth/usecase"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenService returns the token codec. The signing key is decoded, and unwrapped
// through KMS when KMS_KEY_URI is set, on first access.
func (c *Container) TokenService() (authService.TokenService, error) {
	var err error
	c.tokenServiceInit.Do(func() {
		c.tokenService, err = c.initTokenService()
		if err != nil {
			c.initErrors["tokenService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (authUseCase.UserRepository, error) {
	var err error
	c.userRepositoryInit.Do(func() {
		c.userRepository, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepository"]; exists {
		return nil, storedErr
	}
	return c.userRepository, nil
}

// AuthUseCase returns the register/login/authenticate use case.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// UserUseCase returns the operator user management use case.
func (c *Container) UserUseCase() (authUseCase.UserUseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// AuthHandler returns the HTTP handler for register and login.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		c.authHandler, err = c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// initTokenService loads the signing key and creates the token codec.
func (c *Container) initTokenService() (authService.TokenService, error) {
	key, err := authService.LoadSigningKey(context.Background(), c.config.JWTSecret, c.config.KMSKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to load token signing key: %w", err)
	}
	return authService.NewTokenService(key), nil
}

// initUserRepository creates the user repository for the configured driver.
func (c *Container) initUserRepository() (authUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return authRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return authRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAuthUseCase creates the auth use case with all its dependencies.
func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for auth use case: %w", err)
	}

	userRepository, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
	}

	baseUseCase := authUseCase.NewAuthUseCase(
		txManager,
		userRepository,
		c.PasswordService(),
		tokenService,
		c.config.JWTExpiration,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (authUseCase.UserUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepository, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	return authUseCase.NewUserUseCase(txManager, userRepository, c.PasswordService()), nil
}

// initAuthHandler creates the auth HTTP handler.
func (c *Container) initAuthHandler() (*authHTTP.AuthHandler, error) {
	useCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}
	return authHTTP.NewAuthHandler(useCase, c.Logger()), nil
}
