package memory

import (
	"context"
	"sort"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/repository"
)

// matchingRepository operates on a store whose write lock the caller holds.
type matchingRepository struct {
	store *Store
}

func (repo *matchingRepository) Create(_ context.Context, request *entity.MatchingRequest) error {
	return repo.store.createRequestLocked(request)
}

func (repo *matchingRepository) FindByID(_ context.Context, id int64) (*entity.MatchingRequest, error) {
	return repo.store.findRequestByIDLocked(id)
}

func (repo *matchingRepository) FindPendingByPair(_ context.Context, mentorID, menteeID int64) (*entity.MatchingRequest, error) {
	return repo.store.findPendingByPairLocked(mentorID, menteeID)
}

func (repo *matchingRepository) ListByMentee(_ context.Context, menteeID int64) ([]*entity.MatchingRequest, error) {
	return repo.store.listRequestsLocked(func(r *entity.MatchingRequest) bool { return r.MenteeID == menteeID }), nil
}

func (repo *matchingRepository) ListByMentor(_ context.Context, mentorID int64) ([]*entity.MatchingRequest, error) {
	return repo.store.listRequestsLocked(func(r *entity.MatchingRequest) bool { return r.MentorID == mentorID }), nil
}

func (repo *matchingRepository) UpdateStatus(_ context.Context, id int64, status entity.RequestStatus) (*entity.MatchingRequest, error) {
	return repo.store.updateRequestStatusLocked(id, status)
}

func (repo *matchingRepository) RejectPendingByMentor(_ context.Context, mentorID, exceptID int64) error {
	repo.store.rejectPendingByMentorLocked(mentorID, exceptID)

	return nil
}

// lockingMatchingRepository wraps the store for standalone (non-transactional) use.
type lockingMatchingRepository struct {
	store *Store
}

func (repo *lockingMatchingRepository) Create(_ context.Context, request *entity.MatchingRequest) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	return repo.store.createRequestLocked(request)
}

func (repo *lockingMatchingRepository) FindByID(_ context.Context, id int64) (*entity.MatchingRequest, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.store.findRequestByIDLocked(id)
}

func (repo *lockingMatchingRepository) FindPendingByPair(_ context.Context, mentorID, menteeID int64) (*entity.MatchingRequest, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.store.findPendingByPairLocked(mentorID, menteeID)
}

func (repo *lockingMatchingRepository) ListByMentee(_ context.Context, menteeID int64) ([]*entity.MatchingRequest, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.store.listRequestsLocked(func(r *entity.MatchingRequest) bool { return r.MenteeID == menteeID }), nil
}

func (repo *lockingMatchingRepository) ListByMentor(_ context.Context, mentorID int64) ([]*entity.MatchingRequest, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.store.listRequestsLocked(func(r *entity.MatchingRequest) bool { return r.MentorID == mentorID }), nil
}

func (repo *lockingMatchingRepository) UpdateStatus(_ context.Context, id int64, status entity.RequestStatus) (*entity.MatchingRequest, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	return repo.store.updateRequestStatusLocked(id, status)
}

func (repo *lockingMatchingRepository) RejectPendingByMentor(_ context.Context, mentorID, exceptID int64) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.rejectPendingByMentorLocked(mentorID, exceptID)

	return nil
}

func (s *Store) createRequestLocked(request *entity.MatchingRequest) error {
	s.nextRequestID++
	now := s.now()

	request.ID = s.nextRequestID
	request.CreatedAt = now
	request.UpdatedAt = now

	cloned := *request
	s.requests[request.ID] = &cloned

	return nil
}

func (s *Store) findRequestByIDLocked(id int64) (*entity.MatchingRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return nil, repository.ErrRequestNotFound
	}
	cloned := *request

	return &cloned, nil
}

func (s *Store) findPendingByPairLocked(mentorID, menteeID int64) (*entity.MatchingRequest, error) {
	for _, request := range s.requests {
		if request.MentorID == mentorID && request.MenteeID == menteeID && request.Status == entity.RequestStatusPending {
			cloned := *request

			return &cloned, nil
		}
	}

	return nil, repository.ErrRequestNotFound
}

func (s *Store) listRequestsLocked(match func(*entity.MatchingRequest) bool) []*entity.MatchingRequest {
	requests := make([]*entity.MatchingRequest, 0)
	for _, request := range s.requests {
		if match(request) {
			cloned := *request
			requests = append(requests, &cloned)
		}
	}
	// Newest first, ties broken by ID ascending.
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].CreatedAt.Equal(requests[j].CreatedAt) {
			return requests[i].CreatedAt.After(requests[j].CreatedAt)
		}

		return requests[i].ID < requests[j].ID
	})

	return requests
}

func (s *Store) updateRequestStatusLocked(id int64, status entity.RequestStatus) (*entity.MatchingRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return nil, repository.ErrRequestNotFound
	}

	request.Status = status
	request.UpdatedAt = s.now()
	cloned := *request

	return &cloned, nil
}

func (s *Store) rejectPendingByMentorLocked(mentorID, exceptID int64) {
	for _, request := range s.requests {
		if request.MentorID == mentorID && request.ID != exceptID && request.Status == entity.RequestStatusPending {
			request.Status = entity.RequestStatusRejected
			request.UpdatedAt = s.now()
		}
	}
}
