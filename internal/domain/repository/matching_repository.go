package repository

import (
	"context"
	"errors"

	"mentorhub/internal/domain/entity"
)

// ErrRequestNotFound is returned when a matching request does not exist,
// including pair lookups that find no pending request.
var ErrRequestNotFound = errors.New("matching request not found")

// MatchingRequestRepository defines the persistence operations for matching
// requests. List results are ordered newest first by creation time, ties
// broken by request ID ascending.
type MatchingRequestRepository interface {
	// Create persists a new request and assigns its ID.
	Create(ctx context.Context, request *entity.MatchingRequest) error

	// FindByID retrieves a single request by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.MatchingRequest, error)

	// FindPendingByPair retrieves the pending request for a (mentor, mentee)
	// pair, or ErrRequestNotFound when the pair has no pending request.
	FindPendingByPair(ctx context.Context, mentorID, menteeID int64) (*entity.MatchingRequest, error)

	// ListByMentee retrieves every request authored by the mentee.
	ListByMentee(ctx context.Context, menteeID int64) ([]*entity.MatchingRequest, error)

	// ListByMentor retrieves every request addressed to the mentor.
	ListByMentor(ctx context.Context, mentorID int64) ([]*entity.MatchingRequest, error)

	// UpdateStatus moves a single request to the given status and returns
	// the updated record.
	UpdateStatus(ctx context.Context, id int64, status entity.RequestStatus) (*entity.MatchingRequest, error)

	// RejectPendingByMentor transitions every pending request addressed to
	// the mentor, except the one with exceptID, to rejected. This is the
	// bulk side effect of an accept and must run in the same transaction.
	RejectPendingByMentor(ctx context.Context, mentorID, exceptID int64) error
}
