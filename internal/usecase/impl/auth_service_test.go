package impl

import (
	"context"
	"encoding/json"
	"testing"

	"mentorhub/internal/domain/entity"
	domainerrors "mentorhub/internal/domain/errors"
	"mentorhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestFixtures(t)

	output, err := fx.authService.Register(context.Background(), &usecase.RegisterInput{
		Email:    "mentor@example.com",
		Password: "password1",
		Role:     entity.RoleMentor,
		Name:     "Grace Hopper",
	})
	require.NoError(t, err)

	assert.NotZero(t, output.User.ID)
	assert.Equal(t, "mentor@example.com", output.User.Email)
	assert.Equal(t, "mentor", output.User.Role)
	assert.Equal(t, "Grace Hopper", output.User.Name)
}

func TestAuthService_Register_PasswordNeverSerialized(t *testing.T) {
	fx := createTestFixtures(t)

	user := fx.registerUser(t, "mentee@example.com", "Ada", entity.RoleMentee)

	payload, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "password")
	assert.NotContains(t, string(payload), "Password")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestFixtures(t)

	fx.registerUser(t, "taken@example.com", "First", entity.RoleMentee)

	_, err := fx.authService.Register(context.Background(), &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "password1",
		Role:     entity.RoleMentor,
		Name:     "Second",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	fx := createTestFixtures(t)

	_, err := fx.authService.Register(context.Background(), &usecase.RegisterInput{
		Email:    "user@example.com",
		Password: "password1",
		Role:     entity.Role("admin"),
		Name:     "User",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestFixtures(t)

	_, err := fx.authService.Register(context.Background(), &usecase.RegisterInput{
		Email:    "user@example.com",
		Password: "short",
		Role:     entity.RoleMentee,
		Name:     "User",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestFixtures(t)

	registered := fx.registerUser(t, "login@example.com", "Lin", entity.RoleMentee)

	output, err := fx.authService.Login(context.Background(), &usecase.LoginInput{
		Email:    "login@example.com",
		Password: "password1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, output.Token)
	assert.Equal(t, registered.ID, output.User.ID)

	claims, err := fx.tokenService.Validate(output.Token)
	require.NoError(t, err)
	assert.Equal(t, "login@example.com", claims.Email)
	assert.Equal(t, "Lin", claims.Name)
	assert.Equal(t, "mentee", claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestFixtures(t)

	fx.registerUser(t, "login@example.com", "Lin", entity.RoleMentee)

	_, err := fx.authService.Login(context.Background(), &usecase.LoginInput{
		Email:    "login@example.com",
		Password: "wrong-password",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	fx := createTestFixtures(t)

	fx.registerUser(t, "login@example.com", "Lin", entity.RoleMentee)

	_, wrongPassErr := fx.authService.Login(context.Background(), &usecase.LoginInput{
		Email:    "login@example.com",
		Password: "wrong-password",
	})
	_, unknownErr := fx.authService.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "password1",
	})

	// Both failures must collapse into the same error so callers cannot
	// distinguish a missing account from a wrong password.
	assert.True(t, errors.Is(wrongPassErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	fx := createTestFixtures(t)

	_, err := fx.authService.GetProfile(context.Background(), 404)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_UpdateProfile_PartialUpdate(t *testing.T) {
	fx := createTestFixtures(t)

	user := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)

	bio := "30 years of systems programming"
	updated, err := fx.authService.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
		Bio: &bio,
	})
	require.NoError(t, err)

	// Only bio changes; everything else keeps its stored value.
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, "Grace", updated.Name)
	assert.Equal(t, "mentor@example.com", updated.Email)

	name := "Grace Hopper"
	updated, err = fx.authService.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, bio, updated.Bio)
}

func TestAuthService_UpdateProfile_BioTooLong(t *testing.T) {
	fx := createTestFixtures(t)

	user := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)

	tooLong := make([]byte, maxBioLength+1)
	for i := range tooLong {
		tooLong[i] = 'a'
	}
	bio := string(tooLong)

	_, err := fx.authService.UpdateProfile(context.Background(), user.ID, &usecase.UpdateProfileInput{
		Bio: &bio,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_UpdateProfile_UserNotFound(t *testing.T) {
	fx := createTestFixtures(t)

	name := "Ghost"
	_, err := fx.authService.UpdateProfile(context.Background(), 999, &usecase.UpdateProfileInput{
		Name: &name,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
