package memory

import (
	"context"
	"sync"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
)

// amenityRepository implements the repository.AmenityRepository interface.
type amenityRepository struct {
	mu        sync.RWMutex
	amenities map[uuid.UUID]entity.Amenity
}

// NewAmenityRepository is the constructor for amenityRepository.
func NewAmenityRepository() repository.AmenityRepository {
	return &amenityRepository{
		amenities: make(map[uuid.UUID]entity.Amenity),
	}
}

// FindByID retrieves a single amenity by its unique ID.
func (repo *amenityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Amenity, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	amenity, ok := repo.amenities[id]
	if !ok {
		return nil, repository.ErrAmenityNotFound
	}

	return &amenity, nil
}

// FindAll returns every stored amenity.
func (repo *amenityRepository) FindAll(ctx context.Context) ([]*entity.Amenity, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	amenities := make([]*entity.Amenity, 0, len(repo.amenities))
	for _, amenity := range repo.amenities {
		amenity := amenity
		amenities = append(amenities, &amenity)
	}

	return amenities, nil
}

// Insert persists a new amenity entity.
func (repo *amenityRepository) Insert(ctx context.Context, amenity *entity.Amenity) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.amenities[amenity.ID] = *amenity

	return nil
}

// Update replaces an existing amenity entity.
func (repo *amenityRepository) Update(ctx context.Context, amenity *entity.Amenity) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.amenities[amenity.ID]; !ok {
		return repository.ErrAmenityNotFound
	}

	repo.amenities[amenity.ID] = *amenity

	return nil
}

// Delete removes the amenity with the given ID.
func (repo *amenityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.amenities[id]; !ok {
		return repository.ErrAmenityNotFound
	}

	delete(repo.amenities, id)

	return nil
}
