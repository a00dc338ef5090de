package memory

import (
	"context"
	"sort"

	"mentorhub/internal/domain/entity"
	"mentorhub/internal/domain/repository"
)

// userRepository operates on a store whose write lock the caller holds.
type userRepository struct {
	store *Store
}

func (repo *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	return repo.store.findUserByIDLocked(id)
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return repo.store.findUserByEmailLocked(email)
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	return repo.store.createUserLocked(user)
}

func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	return repo.store.updateUserLocked(user)
}

func (repo *userRepository) ListAll(_ context.Context) ([]*entity.User, error) {
	return repo.store.listUsersLocked(), nil
}

func (repo *userRepository) AcquireMatchMutex(_ context.Context, mentorID int64) error {
	// The transaction already holds the store's write lock, which is
	// strictly stronger than a per-mentor row lock.
	_, err := repo.store.findUserByIDLocked(mentorID)

	return err
}

// lockingUserRepository wraps the store for standalone (non-transactional) use.
type lockingUserRepository struct {
	store *Store
}

func (repo *lockingUserRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.store.findUserByIDLocked(id)
}

func (repo *lockingUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.store.findUserByEmailLocked(email)
}

func (repo *lockingUserRepository) Create(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	return repo.store.createUserLocked(user)
}

func (repo *lockingUserRepository) Update(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	return repo.store.updateUserLocked(user)
}

func (repo *lockingUserRepository) ListAll(_ context.Context) ([]*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.store.listUsersLocked(), nil
}

func (repo *lockingUserRepository) AcquireMatchMutex(_ context.Context, mentorID int64) error {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	_, err := repo.store.findUserByIDLocked(mentorID)

	return err
}

func (s *Store) findUserByIDLocked(id int64) (*entity.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cloned := *user

	return &cloned, nil
}

func (s *Store) findUserByEmailLocked(email string) (*entity.User, error) {
	id, ok := s.usersByEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return s.findUserByIDLocked(id)
}

func (s *Store) createUserLocked(user *entity.User) error {
	if _, exists := s.usersByEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}

	s.nextUserID++
	now := s.now()

	user.ID = s.nextUserID
	user.CreatedAt = now
	user.UpdatedAt = now

	cloned := *user
	s.users[user.ID] = &cloned
	s.usersByEmail[user.Email] = user.ID

	return nil
}

func (s *Store) updateUserLocked(user *entity.User) error {
	existing, ok := s.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}

	if existing.Email != user.Email {
		if _, taken := s.usersByEmail[user.Email]; taken {
			return repository.ErrDuplicateEmail
		}
		delete(s.usersByEmail, existing.Email)
		s.usersByEmail[user.Email] = user.ID
	}

	user.UpdatedAt = s.now()
	cloned := *user
	s.users[user.ID] = &cloned

	return nil
}

func (s *Store) listUsersLocked() []*entity.User {
	users := make([]*entity.User, 0, len(s.users))
	for _, user := range s.users {
		cloned := *user
		users = append(users, &cloned)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users
}
