package memory

import (
	"context"
	"sync"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
)

// placeAmenityRepository implements the repository.PlaceAmenityRepository
// interface. The pair itself is the identity, so the store is a set keyed
// by the full link value.
type placeAmenityRepository struct {
	mu    sync.RWMutex
	links map[entity.PlaceAmenity]struct{}
}

// NewPlaceAmenityRepository is the constructor for placeAmenityRepository.
func NewPlaceAmenityRepository() repository.PlaceAmenityRepository {
	return &placeAmenityRepository{
		links: make(map[entity.PlaceAmenity]struct{}),
	}
}

// Link records a place/amenity association. Re-linking an existing pair
// is a no-op.
func (repo *placeAmenityRepository) Link(ctx context.Context, placeID, amenityID uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.links[entity.PlaceAmenity{PlaceID: placeID, AmenityID: amenityID}] = struct{}{}

	return nil
}

// Unlink removes a place/amenity association if present.
func (repo *placeAmenityRepository) Unlink(ctx context.Context, placeID, amenityID uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.links, entity.PlaceAmenity{PlaceID: placeID, AmenityID: amenityID})

	return nil
}

// AmenityIDsOfPlace returns the amenity IDs linked to the place.
func (repo *placeAmenityRepository) AmenityIDsOfPlace(ctx context.Context, placeID uuid.UUID) ([]uuid.UUID, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var ids []uuid.UUID
	for link := range repo.links {
		if link.PlaceID == placeID {
			ids = append(ids, link.AmenityID)
		}
	}

	return ids, nil
}

// PlaceIDsOfAmenity returns the place IDs linked to the amenity.
func (repo *placeAmenityRepository) PlaceIDsOfAmenity(ctx context.Context, amenityID uuid.UUID) ([]uuid.UUID, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var ids []uuid.UUID
	for link := range repo.links {
		if link.AmenityID == amenityID {
			ids = append(ids, link.PlaceID)
		}
	}

	return ids, nil
}
