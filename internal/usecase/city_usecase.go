package usecase

import (
	"context"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCityInput defines the data required to create a new city.
// CountryID is carried as a string and parsed by the service so an
// unusable value is reported against the field.
type CreateCityInput struct {
	Name      string `json:"name" validate:"required"`
	CountryID string `json:"country_id" validate:"required"`
}

// UpdateCityInput defines the partial body accepted by the city update path.
type UpdateCityInput struct {
	Name      *string `json:"name"`
	CountryID *string `json:"country_id"`
}

// CityUsecase defines the interface for city-related business operations.
type CityUsecase interface {
	Create(ctx context.Context, input *CreateCityInput) (*entity.City, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.City, error)
	List(ctx context.Context) ([]*entity.City, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateCityInput) (*entity.City, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// CountryOfCity dereferences the city's country FK.
	CountryOfCity(ctx context.Context, id uuid.UUID) (*entity.Country, error)
}
