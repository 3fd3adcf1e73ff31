package memory

import (
	"context"
	"sync"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
)

// cityRepository implements the repository.CityRepository interface.
type cityRepository struct {
	mu     sync.RWMutex
	cities map[uuid.UUID]entity.City
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository() repository.CityRepository {
	return &cityRepository{
		cities: make(map[uuid.UUID]entity.City),
	}
}

// FindByID retrieves a single city by its unique ID.
func (repo *cityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	city, ok := repo.cities[id]
	if !ok {
		return nil, repository.ErrCityNotFound
	}

	return &city, nil
}

// FindAll returns every stored city.
func (repo *cityRepository) FindAll(ctx context.Context) ([]*entity.City, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	cities := make([]*entity.City, 0, len(repo.cities))
	for _, city := range repo.cities {
		city := city
		cities = append(cities, &city)
	}

	return cities, nil
}

// FindByCountryID filters the stored cities by their country FK.
func (repo *cityRepository) FindByCountryID(ctx context.Context, countryID uuid.UUID) ([]*entity.City, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var cities []*entity.City
	for _, city := range repo.cities {
		if city.CountryID != countryID {
			continue
		}
		city := city
		cities = append(cities, &city)
	}

	return cities, nil
}

// Insert persists a new city entity.
func (repo *cityRepository) Insert(ctx context.Context, city *entity.City) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.cities[city.ID] = *city

	return nil
}

// Update replaces an existing city entity.
func (repo *cityRepository) Update(ctx context.Context, city *entity.City) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.cities[city.ID]; !ok {
		return repository.ErrCityNotFound
	}

	repo.cities[city.ID] = *city

	return nil
}

// Delete removes the city with the given ID.
func (repo *cityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.cities[id]; !ok {
		return repository.ErrCityNotFound
	}

	delete(repo.cities, id)

	return nil
}
