package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "homestay/internal/delivery/context"
	"homestay/internal/domain/entity"
	domainerrors "homestay/internal/domain/errors"
	"homestay/internal/domain/repository"
	"homestay/internal/domain/validate"
	"homestay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// countryService implements the CountryUsecase interface.
type countryService struct {
	countryRepo repository.CountryRepository
	cityRepo    repository.CityRepository
	logger      *slog.Logger
}

// CountryServiceParams holds dependencies for countryService, injected by Fx.
type CountryServiceParams struct {
	fx.In

	CountryRepo repository.CountryRepository
	CityRepo    repository.CityRepository
	Logger      *slog.Logger
}

// NewCountryService is the constructor for countryService.
func NewCountryService(params CountryServiceParams) usecase.CountryUsecase {
	return &countryService{
		countryRepo: params.CountryRepo,
		cityRepo:    params.CityRepo,
		logger:      params.Logger,
	}
}

func (srv *countryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the input and stores the new country. Codes are not
// required to be unique; a duplicate only matters at lookup time.
func (srv *countryService) Create(ctx context.Context, input *usecase.CreateCountryInput) (*entity.Country, error) {
	if err := validate.NonEmpty("name", input.Name); err != nil {
		return nil, err
	}
	if err := validate.NonEmpty("code", input.Code); err != nil {
		return nil, err
	}

	now := time.Now()
	country := &entity.Country{
		ID:        uuid.New(),
		Name:      input.Name,
		Code:      input.Code,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.countryRepo.Insert(ctx, country); err != nil {
		return nil, errors.Wrap(err, "failed to insert country")
	}

	srv.log(ctx).Info("country created",
		slog.String("country_id", country.ID.String()),
		slog.String("code", country.Code),
	)

	return country, nil
}

// GetByCode resolves a country by its short code.
func (srv *countryService) GetByCode(ctx context.Context, code string) (*entity.Country, error) {
	country, err := srv.countryRepo.FindByCode(ctx, code)
	switch {
	case errors.Is(err, repository.ErrCountryNotFound):
		return nil, domainerrors.ErrCountryNotFound.WithDetails("no country with code " + code)
	case errors.Is(err, repository.ErrAmbiguousCountryCode):
		return nil, domainerrors.ErrAmbiguousCountryCode.WithDetails("code " + code + " matches more than one country")
	case err != nil:
		return nil, errors.Wrap(err, "failed to find country")
	}

	return country, nil
}

// List returns every stored country.
func (srv *countryService) List(ctx context.Context) ([]*entity.Country, error) {
	countries, err := srv.countryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	return countries, nil
}

// UpdateByCode applies the allow-listed fields to the country resolved
// by code. The code itself and the id are never mutable.
func (srv *countryService) UpdateByCode(ctx context.Context, code string, input *usecase.UpdateCountryInput) (*entity.Country, error) {
	country, err := srv.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validate.NonEmpty("name", *input.Name); err != nil {
			return nil, err
		}
		country.Name = *input.Name
	}
	country.UpdatedAt = time.Now()

	if err := srv.countryRepo.Update(ctx, country); err != nil {
		return nil, errors.Wrap(err, "failed to update country")
	}

	return country, nil
}

// CitiesOfCountry resolves the country by code and filters the city
// repository by the country FK.
func (srv *countryService) CitiesOfCountry(ctx context.Context, code string) ([]*entity.City, error) {
	country, err := srv.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	cities, err := srv.cityRepo.FindByCountryID(ctx, country.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities of country")
	}

	return cities, nil
}
