// Package memory contains the concrete implementation of the persistence
// layer backed by process-local maps. Each repository owns one entity kind
// and guards its map with a read-write mutex: mutations take the write lock
// for their full duration, reads take the read lock. Entities are copied on
// the way in and out so callers can never mutate stored state except through
// Update.
package memory

import (
	"context"
	"sync"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entity.User
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[uuid.UUID]entity.User),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

// FindAll returns every stored user.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	users := make([]*entity.User, 0, len(repo.users))
	for _, user := range repo.users {
		user := user
		users = append(users, &user)
	}

	return users, nil
}

// Insert persists a new user entity.
func (repo *userRepository) Insert(ctx context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.users[user.ID] = *user

	return nil
}

// Update replaces an existing user entity.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}

	repo.users[user.ID] = *user

	return nil
}

// Delete removes the user with the given ID.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[id]; !ok {
		return repository.ErrUserNotFound
	}

	delete(repo.users, id)

	return nil
}
