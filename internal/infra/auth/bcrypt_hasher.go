// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"mentorhub/config"
	"mentorhub/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultMinPasswordLength = 6
	defaultMaxPasswordLength = 72 // bcrypt truncates input beyond 72 bytes
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}
	if policy.MinLength <= 0 {
		policy.MinLength = defaultMinPasswordLength
	}
	if policy.MaxLength <= 0 {
		policy.MaxLength = defaultMaxPasswordLength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks a plaintext password against the
// configured policy. It never touches the hash functions, so callers can
// validate before spending bcrypt work.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return errors.Errorf("password must be at least %d characters", h.policy.MinLength)
	}
	if len(password) > h.policy.MaxLength {
		return errors.Errorf("password must be at most %d characters", h.policy.MaxLength)
	}

	if h.policy.RequireUppercase && !strings.ContainsFunc(password, unicode.IsUpper) {
		return errors.New("password must contain an uppercase letter")
	}
	if h.policy.RequireLowercase && !strings.ContainsFunc(password, unicode.IsLower) {
		return errors.New("password must contain a lowercase letter")
	}
	if h.policy.RequireNumbers && !strings.ContainsFunc(password, unicode.IsDigit) {
		return errors.New("password must contain a digit")
	}
	if h.policy.RequireSpecial && !strings.ContainsFunc(password, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) {
		return errors.New("password must contain a special character")
	}

	return nil
}
