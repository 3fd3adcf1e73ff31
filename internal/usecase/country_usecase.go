package usecase

import (
	"context"

	"homestay/internal/domain/entity"
)

// CreateCountryInput defines the data required to create a new country.
type CreateCountryInput struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// UpdateCountryInput defines the partial body accepted by the country
// update path. Only the name is mutable; the code is the lookup key.
type UpdateCountryInput struct {
	Name *string `json:"name"`
}

// CountryUsecase defines the interface for country-related business
// operations. Countries are addressed by their short code on the public
// surface, so single-entity operations take a code instead of an ID.
type CountryUsecase interface {
	Create(ctx context.Context, input *CreateCountryInput) (*entity.Country, error)
	GetByCode(ctx context.Context, code string) (*entity.Country, error)
	List(ctx context.Context) ([]*entity.Country, error)
	UpdateByCode(ctx context.Context, code string, input *UpdateCountryInput) (*entity.Country, error)

	// CitiesOfCountry resolves the country by code and returns the
	// cities referencing it.
	CitiesOfCountry(ctx context.Context, code string) ([]*entity.City, error)
}
