package impl

import (
	"context"
	"testing"

	"mentorhub/internal/domain/entity"
	domainerrors "mentorhub/internal/domain/errors"
	"mentorhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchingService_CreateRequest_Success(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)
	mentee := fx.registerUser(t, "mentee@example.com", "Ada", entity.RoleMentee)

	request, err := fx.matching.CreateRequest(context.Background(), &usecase.CreateRequestInput{
		MenteeID: mentee.ID,
		MentorID: mentor.ID,
		Message:  "Please mentor me",
	})
	require.NoError(t, err)

	assert.NotZero(t, request.ID)
	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Equal(t, mentor.ID, request.MentorID)
	assert.Equal(t, mentee.ID, request.MenteeID)
}

func TestMatchingService_CreateRequest_DuplicatePending(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)
	mentee := fx.registerUser(t, "mentee@example.com", "Ada", entity.RoleMentee)

	input := &usecase.CreateRequestInput{MenteeID: mentee.ID, MentorID: mentor.ID}

	_, err := fx.matching.CreateRequest(context.Background(), input)
	require.NoError(t, err)

	_, err = fx.matching.CreateRequest(context.Background(), input)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicatePendingRequest))
}

func TestMatchingService_CreateRequest_AllowedAfterResolution(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)
	mentee := fx.registerUser(t, "mentee@example.com", "Ada", entity.RoleMentee)

	input := &usecase.CreateRequestInput{MenteeID: mentee.ID, MentorID: mentor.ID}

	first, err := fx.matching.CreateRequest(context.Background(), input)
	require.NoError(t, err)

	_, err = fx.matching.Reject(context.Background(), first.ID, mentor.ID)
	require.NoError(t, err)

	// Once the pending request is resolved, the pair may try again.
	second, err := fx.matching.CreateRequest(context.Background(), input)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestMatchingService_CreateRequest_InvalidParticipants(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)
	otherMentor := fx.registerUser(t, "mentor2@example.com", "Rob", entity.RoleMentor)
	mentee := fx.registerUser(t, "mentee@example.com", "Ada", entity.RoleMentee)
	otherMentee := fx.registerUser(t, "mentee2@example.com", "Lin", entity.RoleMentee)

	tests := []struct {
		name  string
		input *usecase.CreateRequestInput
	}{
		{
			name:  "target is not a mentor",
			input: &usecase.CreateRequestInput{MenteeID: mentee.ID, MentorID: otherMentee.ID},
		},
		{
			name:  "author is not a mentee",
			input: &usecase.CreateRequestInput{MenteeID: otherMentor.ID, MentorID: mentor.ID},
		},
		{
			name:  "mentor does not exist",
			input: &usecase.CreateRequestInput{MenteeID: mentee.ID, MentorID: 9999},
		},
		{
			name:  "mentee does not exist",
			input: &usecase.CreateRequestInput{MenteeID: 9999, MentorID: mentor.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.matching.CreateRequest(context.Background(), tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidParticipant))
		})
	}
}

func TestMatchingService_Accept_RejectsOtherPending(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)
	first := fx.registerUser(t, "first@example.com", "Ada", entity.RoleMentee)
	second := fx.registerUser(t, "second@example.com", "Lin", entity.RoleMentee)

	r1, err := fx.matching.CreateRequest(context.Background(), &usecase.CreateRequestInput{
		MenteeID: first.ID, MentorID: mentor.ID,
	})
	require.NoError(t, err)

	r2, err := fx.matching.CreateRequest(context.Background(), &usecase.CreateRequestInput{
		MenteeID: second.ID, MentorID: mentor.ID,
	})
	require.NoError(t, err)

	accepted, err := fx.matching.Accept(context.Background(), r1.ID, mentor.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAccepted, accepted.Status)

	// The sibling pending request was rejected as part of the accept.
	remaining, err := fx.matching.ListIncoming(context.Background(), mentor.ID)
	require.NoError(t, err)
	for _, req := range remaining {
		if req.ID == r2.ID {
			assert.Equal(t, entity.RequestStatusRejected, req.Status)
		}
	}

	// Accepting the already-rejected sibling now fails.
	_, err = fx.matching.Accept(context.Background(), r2.ID, mentor.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotPending))
}

func TestMatchingService_Accept_NotOwner(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)
	otherMentor := fx.registerUser(t, "other@example.com", "Rob", entity.RoleMentor)
	mentee := fx.registerUser(t, "mentee@example.com", "Ada", entity.RoleMentee)

	request, err := fx.matching.CreateRequest(context.Background(), &usecase.CreateRequestInput{
		MenteeID: mentee.ID, MentorID: mentor.ID,
	})
	require.NoError(t, err)

	_, err = fx.matching.Accept(context.Background(), request.ID, otherMentor.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotRequestOwner))
}

func TestMatchingService_Accept_NotFound(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)

	_, err := fx.matching.Accept(context.Background(), 404, mentor.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotFound))
}

func TestMatchingService_Reject_OnlyTargetChanges(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)
	first := fx.registerUser(t, "first@example.com", "Ada", entity.RoleMentee)
	second := fx.registerUser(t, "second@example.com", "Lin", entity.RoleMentee)

	r1, err := fx.matching.CreateRequest(context.Background(), &usecase.CreateRequestInput{
		MenteeID: first.ID, MentorID: mentor.ID,
	})
	require.NoError(t, err)

	r2, err := fx.matching.CreateRequest(context.Background(), &usecase.CreateRequestInput{
		MenteeID: second.ID, MentorID: mentor.ID,
	})
	require.NoError(t, err)

	rejected, err := fx.matching.Reject(context.Background(), r1.ID, mentor.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusRejected, rejected.Status)

	// Rejecting one request leaves the other pending.
	other, err := fx.matching.ListIncoming(context.Background(), mentor.ID)
	require.NoError(t, err)
	for _, req := range other {
		if req.ID == r2.ID {
			assert.Equal(t, entity.RequestStatusPending, req.Status)
		}
	}
}

func TestMatchingService_Cancel_ByMentee(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)
	mentee := fx.registerUser(t, "mentee@example.com", "Ada", entity.RoleMentee)

	request, err := fx.matching.CreateRequest(context.Background(), &usecase.CreateRequestInput{
		MenteeID: mentee.ID, MentorID: mentor.ID,
	})
	require.NoError(t, err)

	cancelled, err := fx.matching.Cancel(context.Background(), request.ID, mentee.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusCancelled, cancelled.Status)

	// A cancelled request cannot be accepted anymore.
	_, err = fx.matching.Accept(context.Background(), request.ID, mentor.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrRequestNotPending))
}

func TestMatchingService_Cancel_NotAuthor(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)
	mentee := fx.registerUser(t, "mentee@example.com", "Ada", entity.RoleMentee)
	other := fx.registerUser(t, "other@example.com", "Lin", entity.RoleMentee)

	request, err := fx.matching.CreateRequest(context.Background(), &usecase.CreateRequestInput{
		MenteeID: mentee.ID, MentorID: mentor.ID,
	})
	require.NoError(t, err)

	_, err = fx.matching.Cancel(context.Background(), request.ID, other.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotRequestOwner))
}

func TestMatchingService_Lists(t *testing.T) {
	fx := createTestFixtures(t)

	mentor := fx.registerUser(t, "mentor@example.com", "Grace", entity.RoleMentor)
	otherMentor := fx.registerUser(t, "mentor2@example.com", "Rob", entity.RoleMentor)
	mentee := fx.registerUser(t, "mentee@example.com", "Ada", entity.RoleMentee)

	r1, err := fx.matching.CreateRequest(context.Background(), &usecase.CreateRequestInput{
		MenteeID: mentee.ID, MentorID: mentor.ID,
	})
	require.NoError(t, err)

	r2, err := fx.matching.CreateRequest(context.Background(), &usecase.CreateRequestInput{
		MenteeID: mentee.ID, MentorID: otherMentor.ID,
	})
	require.NoError(t, err)

	outgoing, err := fx.matching.ListOutgoing(context.Background(), mentee.ID)
	require.NoError(t, err)
	require.Len(t, outgoing, 2)

	incoming, err := fx.matching.ListIncoming(context.Background(), mentor.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, r1.ID, incoming[0].ID)

	incoming, err = fx.matching.ListIncoming(context.Background(), otherMentor.ID)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, r2.ID, incoming[0].ID)
}
