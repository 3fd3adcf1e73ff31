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

// cityService implements the CityUsecase interface.
type cityService struct {
	cityRepo    repository.CityRepository
	countryRepo repository.CountryRepository
	logger      *slog.Logger
}

// CityServiceParams holds dependencies for cityService, injected by Fx.
type CityServiceParams struct {
	fx.In

	CityRepo    repository.CityRepository
	CountryRepo repository.CountryRepository
	Logger      *slog.Logger
}

// NewCityService is the constructor for cityService.
func NewCityService(params CityServiceParams) usecase.CityUsecase {
	return &cityService{
		cityRepo:    params.CityRepo,
		countryRepo: params.CountryRepo,
		logger:      params.Logger,
	}
}

func (srv *cityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveCountryID parses and checks the country FK against the country
// repository. A missing target is a validation failure on country_id,
// not a lookup miss: the city request itself is what is invalid.
func (srv *cityService) resolveCountryID(ctx context.Context, value string) (uuid.UUID, error) {
	id, err := parseID("country_id", value)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := srv.countryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCountryNotFound) {
			return uuid.Nil, domainerrors.NewValidationError("country_id", value, "must reference an existing country")
		}

		return uuid.Nil, errors.Wrap(err, "failed to check country reference")
	}

	return id, nil
}

// Create validates the full field set before any entity is materialized.
func (srv *cityService) Create(ctx context.Context, input *usecase.CreateCityInput) (*entity.City, error) {
	if err := validate.SpacedName("name", input.Name); err != nil {
		return nil, err
	}
	countryID, err := srv.resolveCountryID(ctx, input.CountryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	city := &entity.City{
		ID:        uuid.New(),
		Name:      input.Name,
		CountryID: countryID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.cityRepo.Insert(ctx, city); err != nil {
		return nil, errors.Wrap(err, "failed to insert city")
	}

	srv.log(ctx).Info("city created", slog.String("city_id", city.ID.String()))

	return city, nil
}

// Get retrieves a single city by ID.
func (srv *cityService) Get(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	city, err := srv.cityRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCityNotFound) {
		return nil, domainerrors.ErrCityNotFound.WithDetails("no city with id " + id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find city")
	}

	return city, nil
}

// List returns every stored city.
func (srv *cityService) List(ctx context.Context) ([]*entity.City, error) {
	cities, err := srv.cityRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	return cities, nil
}

// Update validates every provided field before applying any of them,
// so a rejected update leaves the city untouched.
func (srv *cityService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateCityInput) (*entity.City, error) {
	city, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validate.SpacedName("name", *input.Name); err != nil {
			return nil, err
		}
	}
	var countryID uuid.UUID
	if input.CountryID != nil {
		countryID, err = srv.resolveCountryID(ctx, *input.CountryID)
		if err != nil {
			return nil, err
		}
	}

	if input.Name != nil {
		city.Name = *input.Name
	}
	if input.CountryID != nil {
		city.CountryID = countryID
	}
	city.UpdatedAt = time.Now()

	if err := srv.cityRepo.Update(ctx, city); err != nil {
		return nil, errors.Wrap(err, "failed to update city")
	}

	return city, nil
}

// Delete removes the city. Places referencing it keep their dangling FK.
func (srv *cityService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.cityRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrCityNotFound) {
		return domainerrors.ErrCityNotFound.WithDetails("no city with id " + id.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete city")
	}

	return nil
}

// CountryOfCity dereferences the city's country FK.
func (srv *cityService) CountryOfCity(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	city, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	country, err := srv.countryRepo.FindByID(ctx, city.CountryID)
	if errors.Is(err, repository.ErrCountryNotFound) {
		return nil, domainerrors.ErrCountryNotFound.WithDetails("no country for city with id " + id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find country of city")
	}

	return country, nil
}
