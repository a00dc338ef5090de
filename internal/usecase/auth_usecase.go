// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mentorhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
	Role     entity.Role
	Name     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the fields of a partial profile update.
// Nil fields are left unchanged; this is not a full replace.
type UpdateProfileInput struct {
	Name            *string `json:"name,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
	TechStack       *string `json:"techStack,omitempty"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's public view.
type RegisterOutput struct {
	User *entity.PublicProfile
}

// LoginOutput returns the bearer token and the account's public view
// after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.PublicProfile
}

// AuthUsecase defines the interface for registration, login and profile
// operations. This is the contract the delivery layer depends on. Every
// returned user is the password-free PublicProfile projection.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID int64) (*entity.PublicProfile, error)
	UpdateProfile(ctx context.Context, userID int64, input *UpdateProfileInput) (*entity.PublicProfile, error)
}
