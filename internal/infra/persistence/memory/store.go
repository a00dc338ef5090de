// Package memory provides an in-process implementation of the persistence
// layer. It backs the unit tests and local runs that have no database.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/repository"
)

// Store holds all state behind a single RWMutex. Transactions take the
// write lock for their whole body, which gives the same serialization a
// row lock provides in PostgreSQL, just coarser.
type Store struct {
	mu sync.RWMutex

	users         map[int64]*entity.User
	usersByEmail  map[string]int64
	requests      map[int64]*entity.MatchingRequest
	nextUserID    int64
	nextRequestID int64

	now func() time.Time
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:        make(map[int64]*entity.User),
		usersByEmail: make(map[string]int64),
		requests:     make(map[int64]*entity.MatchingRequest),
		now:          time.Now,
	}
}

// UserRepo returns a user repository that locks the store per call.
func (s *Store) UserRepo() repository.UserRepository {
	return &lockingUserRepository{store: s}
}

// MatchingRepo returns a matching repository that locks the store per call.
func (s *Store) MatchingRepo() repository.MatchingRequestRepository {
	return &lockingMatchingRepository{store: s}
}

// NewTransactionManager returns a TransactionManager over the store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

type transactionManager struct {
	store *Store
}

// memoryRepositoryFactory hands out repositories that assume the caller
// already holds the store's write lock.
type memoryRepositoryFactory struct {
	store *Store
}

func (f *memoryRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{store: f.store}
}

func (f *memoryRepositoryFactory) MatchingRepo() repository.MatchingRequestRepository {
	return &matchingRepository{store: f.store}
}

// Execute runs fn under the store's write lock. On error the store is
// restored from a snapshot, so failed transactions leave no partial state.
func (tm *transactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snapshot := tm.store.snapshotLocked()

	if err := fn(&memoryRepositoryFactory{store: tm.store}); err != nil {
		tm.store.restoreLocked(snapshot)

		return err
	}

	return nil
}

type storeSnapshot struct {
	users         map[int64]*entity.User
	usersByEmail  map[string]int64
	requests      map[int64]*entity.MatchingRequest
	nextUserID    int64
	nextRequestID int64
}

func (s *Store) snapshotLocked() storeSnapshot {
	users := make(map[int64]*entity.User, len(s.users))
	for id, u := range s.users {
		cloned := *u
		users[id] = &cloned
	}

	requests := make(map[int64]*entity.MatchingRequest, len(s.requests))
	for id, r := range s.requests {
		cloned := *r
		requests[id] = &cloned
	}

	return storeSnapshot{
		users:         users,
		usersByEmail:  maps.Clone(s.usersByEmail),
		requests:      requests,
		nextUserID:    s.nextUserID,
		nextRequestID: s.nextRequestID,
	}
}

func (s *Store) restoreLocked(snap storeSnapshot) {
	s.users = snap.users
	s.usersByEmail = snap.usersByEmail
	s.requests = snap.requests
	s.nextUserID = snap.nextUserID
	s.nextRequestID = snap.nextRequestID
}
