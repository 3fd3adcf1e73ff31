package memory

import (
	"context"
	"sync"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
)

// countryRepository implements the repository.CountryRepository interface.
type countryRepository struct {
	mu        sync.RWMutex
	countries map[uuid.UUID]entity.Country
}

// NewCountryRepository is the constructor for countryRepository.
func NewCountryRepository() repository.CountryRepository {
	return &countryRepository{
		countries: make(map[uuid.UUID]entity.Country),
	}
}

// FindByID retrieves a single country by its unique ID.
func (repo *countryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	country, ok := repo.countries[id]
	if !ok {
		return nil, repository.ErrCountryNotFound
	}

	return &country, nil
}

// FindByCode resolves a country by its short code with a linear scan.
// The code is not a key, so the scan has to account for zero matches
// and for duplicates.
func (repo *countryRepository) FindByCode(ctx context.Context, code string) (*entity.Country, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var found *entity.Country
	for _, country := range repo.countries {
		if country.Code != code {
			continue
		}
		if found != nil {
			return nil, repository.ErrAmbiguousCountryCode
		}
		country := country
		found = &country
	}

	if found == nil {
		return nil, repository.ErrCountryNotFound
	}

	return found, nil
}

// FindAll returns every stored country.
func (repo *countryRepository) FindAll(ctx context.Context) ([]*entity.Country, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	countries := make([]*entity.Country, 0, len(repo.countries))
	for _, country := range repo.countries {
		country := country
		countries = append(countries, &country)
	}

	return countries, nil
}

// Insert persists a new country entity.
func (repo *countryRepository) Insert(ctx context.Context, country *entity.Country) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.countries[country.ID] = *country

	return nil
}

// Update replaces an existing country entity.
func (repo *countryRepository) Update(ctx context.Context, country *entity.Country) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.countries[country.ID]; !ok {
		return repository.ErrCountryNotFound
	}

	repo.countries[country.ID] = *country

	return nil
}
