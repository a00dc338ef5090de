package postgres

import (
	"context"

	"mentorhub/internal/domain/entity"
	domainerrors "mentorhub/internal/domain/errors"
	"mentorhub/internal/domain/repository"
	"mentorhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// matchingRequestRepository implements the domain's MatchingRequestRepository interface using GORM.
type matchingRequestRepository struct {
	db *gorm.DB
}

// NewMatchingRequestRepository is the constructor for matchingRequestRepository.
func NewMatchingRequestRepository(db *gorm.DB) repository.MatchingRequestRepository {
	return &matchingRequestRepository{db: db}
}

// Create persists a new matching request and assigns its ID.
func (repo *matchingRequestRepository) Create(ctx context.Context, request *entity.MatchingRequest) error {
	requestM := model.FromMatchingRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create matching request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// FindByID retrieves a single matching request by its unique ID.
func (repo *matchingRequestRepository) FindByID(ctx context.Context, id int64) (*entity.MatchingRequest, error) {
	var requestM model.MatchingRequestModel
	if err := repo.db.WithContext(ctx).First(&requestM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find matching request by id")
	}

	return requestM.ToDomain(), nil
}

// FindPendingByPair retrieves the pending request for a (mentor, mentee) pair.
func (repo *matchingRequestRepository) FindPendingByPair(ctx context.Context, mentorID, menteeID int64) (*entity.MatchingRequest, error) {
	var requestM model.MatchingRequestModel
	err := repo.db.WithContext(ctx).
		Where("mentor_id = ? AND mentee_id = ? AND status = ?", mentorID, menteeID, entity.RequestStatusPending.String()).
		First(&requestM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending request by pair")
	}

	return requestM.ToDomain(), nil
}

// ListByMentee retrieves every request authored by the mentee, newest first.
func (repo *matchingRequestRepository) ListByMentee(ctx context.Context, menteeID int64) ([]*entity.MatchingRequest, error) {
	return repo.list(ctx, "mentee_id = ?", menteeID)
}

// ListByMentor retrieves every request addressed to the mentor, newest first.
func (repo *matchingRequestRepository) ListByMentor(ctx context.Context, mentorID int64) ([]*entity.MatchingRequest, error) {
	return repo.list(ctx, "mentor_id = ?", mentorID)
}

func (repo *matchingRequestRepository) list(ctx context.Context, condition string, arg int64) ([]*entity.MatchingRequest, error) {
	var models []model.MatchingRequestModel
	err := repo.db.WithContext(ctx).
		Where(condition, arg).
		Order("created_at DESC, id ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list matching requests")
	}

	requests := make([]*entity.MatchingRequest, 0, len(models))
	for i := range models {
		requests = append(requests, models[i].ToDomain())
	}

	return requests, nil
}

// UpdateStatus moves a single request to the given status and returns the updated record.
func (repo *matchingRequestRepository) UpdateStatus(ctx context.Context, id int64, status entity.RequestStatus) (*entity.MatchingRequest, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MatchingRequestModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update request status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrRequestNotFound
	}

	return repo.FindByID(ctx, id)
}

// RejectPendingByMentor transitions every pending request addressed to the
// mentor, except exceptID, to rejected. Runs in the caller's transaction.
func (repo *matchingRequestRepository) RejectPendingByMentor(ctx context.Context, mentorID, exceptID int64) error {
	err := repo.db.WithContext(ctx).
		Model(&model.MatchingRequestModel{}).
		Where("mentor_id = ? AND status = ? AND id <> ?", mentorID, entity.RequestStatusPending.String(), exceptID).
		Update("status", entity.RequestStatusRejected.String()).Error
	if err != nil {
		return errors.Wrap(err, "failed to reject pending requests")
	}

	return nil
}
