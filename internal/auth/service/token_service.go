package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/allisson/catalog/internal/auth/domain"
	apperrors "github.com/allisson/catalog/internal/errors"
)

// tokenClaims is the JWT payload: sub, role, iat, exp.
type tokenClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// tokenService implements TokenService with HS256-signed JWTs.
type tokenService struct {
	key    []byte
	now    func() time.Time
	parser *jwt.Parser
}

// TokenOption configures a TokenService.
type TokenOption func(*tokenService)

// WithClock replaces the wall clock used for issuing and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

// NewTokenService creates a TokenService signing with key.
func NewTokenService(key []byte, opts ...TokenOption) TokenService {
	s := &tokenService{
		key: key,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	return s
}

// Issue signs a token for identity and role with exp = now + ttl.
func (s *tokenService) Issue(identity string, role authDomain.Role, ttl time.Duration) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return token, nil
}

// Parse verifies and decodes token. A missing role claim yields authDomain.RoleNone.
func (s *tokenService) Parse(token string) (*authDomain.Claims, error) {
	claims := &tokenClaims{}

	parsed, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	})
	if err != nil {
		return nil, apperrors.Wrap(authDomain.ErrInvalidToken, err.Error())
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, authDomain.ErrInvalidToken
	}

	result := &authDomain.Claims{
		Subject:   claims.Subject,
		Role:      authDomain.ParseRole(claims.Role),
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	return result, nil
}
