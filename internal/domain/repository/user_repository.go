// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mentorhub/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when an insert collides with the unique
// email constraint. The store enforces the constraint itself, so a racing
// pre-check cannot create two accounts for one email.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
// Email lookups are exact, case-sensitive matches.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity and assigns its ID.
	// Returns ErrDuplicateEmail if the email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// ListAll retrieves every user, ordered by ID ascending.
	ListAll(ctx context.Context) ([]*entity.User, error)

	// AcquireMatchMutex locks the mentor's user row for the duration of the
	// surrounding transaction. Every matching-request mutation for a mentor
	// serializes on this lock, so an accept and its bulk side effect cannot
	// race a concurrent create, accept or cancel for the same mentor.
	AcquireMatchMutex(ctx context.Context, mentorID int64) error
}
