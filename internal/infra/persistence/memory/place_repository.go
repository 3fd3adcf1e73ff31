package memory

import (
	"context"
	"sync"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
)

// placeRepository implements the repository.PlaceRepository interface.
type placeRepository struct {
	mu     sync.RWMutex
	places map[uuid.UUID]entity.Place
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository() repository.PlaceRepository {
	return &placeRepository{
		places: make(map[uuid.UUID]entity.Place),
	}
}

// FindByID retrieves a single place by its unique ID.
func (repo *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	place, ok := repo.places[id]
	if !ok {
		return nil, repository.ErrPlaceNotFound
	}

	return &place, nil
}

// FindAll returns every stored place.
func (repo *placeRepository) FindAll(ctx context.Context) ([]*entity.Place, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	places := make([]*entity.Place, 0, len(repo.places))
	for _, place := range repo.places {
		place := place
		places = append(places, &place)
	}

	return places, nil
}

// Insert persists a new place entity.
func (repo *placeRepository) Insert(ctx context.Context, place *entity.Place) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.places[place.ID] = *place

	return nil
}

// Update replaces an existing place entity.
func (repo *placeRepository) Update(ctx context.Context, place *entity.Place) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.places[place.ID]; !ok {
		return repository.ErrPlaceNotFound
	}

	repo.places[place.ID] = *place

	return nil
}

// Delete removes the place with the given ID. Join rows and reviews that
// reference the place are left behind; FK fields are weak references.
func (repo *placeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.places[id]; !ok {
		return repository.ErrPlaceNotFound
	}

	delete(repo.places, id)

	return nil
}
