package service

import (
	"crypto/rand"
	"encoding/base64"
	"strings"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/allisson/catalog/internal/errors"
)

const (
	// generatedPasswordBytes keeps encoded passwords at 32 characters, under bcrypt's 72 byte cap.
	generatedPasswordBytes = 24

	// legacyBcryptPrefix matches $2a$, $2b$ and $2y$ hashes.
	legacyBcryptPrefix = "$2"
)

type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// GeneratePassword returns a random URL-safe password together with its Argon2id hash.
func (s *passwordService) GeneratePassword() (string, string, error) {
	buf := make([]byte, generatedPasswordBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate password")
	}

	plain := base64.URLEncoding.EncodeToString(buf)
	hash, err := s.HashPassword(plain)
	if err != nil {
		return "", "", err
	}
	return plain, hash, nil
}

// HashPassword returns the PHC encoded Argon2id hash of password.
func (s *passwordService) HashPassword(password string) (string, error) {
	hash, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hash, nil
}

// ComparePassword reports whether password matches hash. Hashes imported from
// a bcrypt store are verified with bcrypt; everything else goes through pwdhash.
// Malformed hashes never match.
func (s *passwordService) ComparePassword(password, hash string) bool {
	if strings.HasPrefix(hash, legacyBcryptPrefix) {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}

	ok, err := s.hasher.Verify([]byte(password), hash)
	return err == nil && ok
}

// NewPasswordService returns an Argon2id PasswordService tuned with the moderate policy.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyModerate))
	if err != nil {
		// only reachable with an invalid built-in policy
		panic(err)
	}
	return &passwordService{hasher: hasher}
}
