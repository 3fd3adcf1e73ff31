package repository

import (
	"context"
	"errors"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCityNotFound is returned when no city matches the given ID.
var ErrCityNotFound = errors.New("city not found")

// CityRepository defines the standard operations for city persistence.
type CityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error)

	FindAll(ctx context.Context) ([]*entity.City, error)

	// FindByCountryID filters the stored cities by their country FK.
	FindByCountryID(ctx context.Context, countryID uuid.UUID) ([]*entity.City, error)

	Insert(ctx context.Context, city *entity.City) error

	Update(ctx context.Context, city *entity.City) error

	Delete(ctx context.Context, id uuid.UUID) error
}
