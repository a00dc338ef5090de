// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mentorhub/internal/domain/entity"
)

// CreateRequestInput defines the data required to open a matching request.
// Only a mentee may author a request, and only toward a mentor.
type CreateRequestInput struct {
	MenteeID int64
	MentorID int64
	Message  string
}

// MatchingUsecase owns the matching-request state machine. Accepting a
// request also rejects every other pending request addressed to the same
// mentor, as one atomic unit: a mentor mentors at most one mentee at a time.
type MatchingUsecase interface {
	CreateRequest(ctx context.Context, input *CreateRequestInput) (*entity.MatchingRequest, error)

	// Accept transitions the mentor's pending request to accepted and
	// bulk-rejects the mentor's other pending requests.
	Accept(ctx context.Context, requestID, actingMentorID int64) (*entity.MatchingRequest, error)

	// Reject transitions only the target request to rejected.
	Reject(ctx context.Context, requestID, actingMentorID int64) (*entity.MatchingRequest, error)

	// Cancel lets the authoring mentee withdraw a still-pending request.
	Cancel(ctx context.Context, requestID, actingMenteeID int64) (*entity.MatchingRequest, error)

	// ListOutgoing returns every request authored by the mentee, newest first.
	ListOutgoing(ctx context.Context, menteeID int64) ([]*entity.MatchingRequest, error)

	// ListIncoming returns every request addressed to the mentor, newest first.
	ListIncoming(ctx context.Context, mentorID int64) ([]*entity.MatchingRequest, error)
}
