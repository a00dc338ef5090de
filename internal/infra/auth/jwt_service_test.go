package auth

import (
	"testing"
	"time"

	"mentorhub/config"
	"mentorhub/internal/domain/entity"
	domainerrors "mentorhub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = secret
	cfg.SecretKey.TokenTTL = ttl

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("secret", time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue("user@example.com", "Ada", entity.RoleMentee)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "mentee", claims.Role)
	assert.Equal(t, "mentorhub", claims.Issuer)
	assert.Contains(t, claims.Audience, "mentorhub-users")
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_UniqueTokenIDs(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("secret", time.Hour))
	require.NoError(t, err)

	first, err := svc.Issue("user@example.com", "Ada", entity.RoleMentee)
	require.NoError(t, err)
	second, err := svc.Issue("user@example.com", "Ada", entity.RoleMentee)
	require.NoError(t, err)

	firstClaims, err := svc.Validate(first)
	require.NoError(t, err)
	secondClaims, err := svc.Validate(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTService_Validate_Expired(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("secret", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue("user@example.com", "Ada", entity.RoleMentee)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newJWTConfig("secret-a", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newJWTConfig("secret-b", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue("user@example.com", "Ada", entity.RoleMentee)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenBadSignature))
}

func TestJWTService_Validate_Malformed(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.Validate("not.a.token")
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newJWTConfig("", time.Hour))
	assert.Error(t, err)
}
