package impl

import (
	"context"
	"log/slog"

	deliverycontext "mentorhub/internal/delivery/context"
	"mentorhub/internal/domain/entity"
	domainerrors "mentorhub/internal/domain/errors"
	"mentorhub/internal/domain/repository"
	"mentorhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// matchingService implements the MatchingUsecase interface.
type matchingService struct {
	txManager    repository.TransactionManager
	matchingRepo repository.MatchingRequestRepository
	logger       *slog.Logger
}

// MatchingServiceParams holds dependencies for matchingService, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	MatchingRepo repository.MatchingRequestRepository
	Logger       *slog.Logger
}

// NewMatchingService is the constructor for matchingService.
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	return &matchingService{
		txManager:    params.TxManager,
		matchingRepo: params.MatchingRepo,
		logger:       params.Logger,
	}
}

func (srv *matchingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRequest records a mentee's pending request toward a mentor. The
// duplicate-pending check and the insert run under the mentor's match
// mutex so concurrent submissions cannot both slip through.
func (srv *matchingService) CreateRequest(ctx context.Context, input *usecase.CreateRequestInput) (*entity.MatchingRequest, error) {
	srv.log(ctx).Info("Creating matching request",
		slog.Int64("menteeID", input.MenteeID),
		slog.Int64("mentorID", input.MentorID))

	var created *entity.MatchingRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		matchingRepo := repoFactory.MatchingRepo()

		mentor, findErr := userRepo.FindByID(ctx, input.MentorID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidParticipant, "mentor not found")
			}

			return errors.Wrap(findErr, "failed to load mentor")
		}
		if mentor.Role != entity.RoleMentor {
			return errors.Wrap(domainerrors.ErrInvalidParticipant, "target user is not a mentor")
		}

		mentee, findErr := userRepo.FindByID(ctx, input.MenteeID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidParticipant, "mentee not found")
			}

			return errors.Wrap(findErr, "failed to load mentee")
		}
		if mentee.Role != entity.RoleMentee {
			return errors.Wrap(domainerrors.ErrInvalidParticipant, "requesting user is not a mentee")
		}

		if lockErr := userRepo.AcquireMatchMutex(ctx, input.MentorID); lockErr != nil {
			return errors.Wrap(lockErr, "failed to acquire match mutex")
		}

		_, pendingErr := matchingRepo.FindPendingByPair(ctx, input.MentorID, input.MenteeID)
		if pendingErr == nil {
			return errors.Wrap(domainerrors.ErrDuplicatePendingRequest, "a pending request already exists for this pair")
		}
		if !errors.Is(pendingErr, repository.ErrRequestNotFound) {
			return errors.Wrap(pendingErr, "failed to check pending request")
		}

		request := &entity.MatchingRequest{
			MentorID: input.MentorID,
			MenteeID: input.MenteeID,
			Message:  input.Message,
			Status:   entity.RequestStatusPending,
		}
		if createErr := matchingRepo.Create(ctx, request); createErr != nil {
			return errors.Wrap(createErr, "failed to create matching request")
		}
		created = request

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Matching request creation failed",
			slog.Int64("menteeID", input.MenteeID),
			slog.Int64("mentorID", input.MentorID),
			slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Matching request created", slog.Int64("requestID", created.ID))

	return created, nil
}

// Accept marks a pending request accepted and rejects every other pending
// request aimed at the same mentor, all inside one transaction under the
// mentor's match mutex.
func (srv *matchingService) Accept(ctx context.Context, requestID int64, actingMentorID int64) (*entity.MatchingRequest, error) {
	srv.log(ctx).Info("Accepting matching request",
		slog.Int64("requestID", requestID),
		slog.Int64("mentorID", actingMentorID))

	var accepted *entity.MatchingRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		matchingRepo := repoFactory.MatchingRepo()

		request, findErr := srv.loadOwnedRequest(ctx, matchingRepo, requestID, actingMentorID, false)
		if findErr != nil {
			return findErr
		}

		if lockErr := userRepo.AcquireMatchMutex(ctx, request.MentorID); lockErr != nil {
			return errors.Wrap(lockErr, "failed to acquire match mutex")
		}

		// Re-read under the lock: another accept may have raced us in.
		request, findErr = matchingRepo.FindByID(ctx, requestID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to re-read request")
		}
		if request.Status != entity.RequestStatusPending {
			return errors.Wrap(domainerrors.ErrRequestNotPending, "request is no longer pending")
		}

		updated, updateErr := matchingRepo.UpdateStatus(ctx, requestID, entity.RequestStatusAccepted)
		if updateErr != nil {
			return errors.Wrap(updateErr, "failed to accept request")
		}

		if rejectErr := matchingRepo.RejectPendingByMentor(ctx, request.MentorID, requestID); rejectErr != nil {
			return errors.Wrap(rejectErr, "failed to reject remaining pending requests")
		}
		accepted = updated

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Accept failed", slog.Int64("requestID", requestID), slog.Any("error", err))

		return nil, err
	}

	return accepted, nil
}

// Reject marks a pending request rejected on behalf of its mentor.
func (srv *matchingService) Reject(ctx context.Context, requestID int64, actingMentorID int64) (*entity.MatchingRequest, error) {
	return srv.resolve(ctx, requestID, actingMentorID, false, entity.RequestStatusRejected)
}

// Cancel withdraws a pending request on behalf of its mentee.
func (srv *matchingService) Cancel(ctx context.Context, requestID int64, actingMenteeID int64) (*entity.MatchingRequest, error) {
	return srv.resolve(ctx, requestID, actingMenteeID, true, entity.RequestStatusCancelled)
}

// resolve performs the shared single-request state transition for reject
// and cancel under the mentor's match mutex.
func (srv *matchingService) resolve(ctx context.Context, requestID int64, actingUserID int64, actorIsMentee bool, target entity.RequestStatus) (*entity.MatchingRequest, error) {
	srv.log(ctx).Info("Resolving matching request",
		slog.Int64("requestID", requestID),
		slog.Any("target", target))

	var resolved *entity.MatchingRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		matchingRepo := repoFactory.MatchingRepo()

		request, findErr := srv.loadOwnedRequest(ctx, matchingRepo, requestID, actingUserID, actorIsMentee)
		if findErr != nil {
			return findErr
		}

		if lockErr := userRepo.AcquireMatchMutex(ctx, request.MentorID); lockErr != nil {
			return errors.Wrap(lockErr, "failed to acquire match mutex")
		}

		request, findErr = matchingRepo.FindByID(ctx, requestID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to re-read request")
		}
		if request.Status != entity.RequestStatusPending {
			return errors.Wrap(domainerrors.ErrRequestNotPending, "request is no longer pending")
		}

		updated, updateErr := matchingRepo.UpdateStatus(ctx, requestID, target)
		if updateErr != nil {
			return errors.Wrap(updateErr, "failed to update request status")
		}
		resolved = updated

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Resolve failed", slog.Int64("requestID", requestID), slog.Any("error", err))

		return nil, err
	}

	return resolved, nil
}

// loadOwnedRequest fetches a request and verifies the acting user is the
// side allowed to act on it. Ownership is checked before the pending check
// so a foreign caller learns nothing about the request's state.
func (srv *matchingService) loadOwnedRequest(ctx context.Context, matchingRepo repository.MatchingRequestRepository, requestID int64, actingUserID int64, actorIsMentee bool) (*entity.MatchingRequest, error) {
	request, err := matchingRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRequestNotFound, "matching request not found")
		}

		return nil, errors.Wrap(err, "failed to load matching request")
	}

	owner := request.MentorID
	if actorIsMentee {
		owner = request.MenteeID
	}
	if owner != actingUserID {
		return nil, errors.Wrap(domainerrors.ErrNotRequestOwner, "request belongs to another user")
	}

	return request, nil
}

// ListOutgoing returns a mentee's requests, newest first.
func (srv *matchingService) ListOutgoing(ctx context.Context, menteeID int64) ([]*entity.MatchingRequest, error) {
	requests, err := srv.matchingRepo.ListByMentee(ctx, menteeID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list outgoing requests")
	}

	return requests, nil
}

// ListIncoming returns a mentor's received requests, newest first.
func (srv *matchingService) ListIncoming(ctx context.Context, mentorID int64) ([]*entity.MatchingRequest, error) {
	requests, err := srv.matchingRepo.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list incoming requests")
	}

	return requests, nil
}
