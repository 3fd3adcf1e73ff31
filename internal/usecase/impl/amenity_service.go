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

// amenityService implements the AmenityUsecase interface.
type amenityService struct {
	amenityRepo repository.AmenityRepository
	linkRepo    repository.PlaceAmenityRepository
	logger      *slog.Logger
}

// AmenityServiceParams holds dependencies for amenityService, injected by Fx.
type AmenityServiceParams struct {
	fx.In

	AmenityRepo repository.AmenityRepository
	LinkRepo    repository.PlaceAmenityRepository
	Logger      *slog.Logger
}

// NewAmenityService is the constructor for amenityService.
func NewAmenityService(params AmenityServiceParams) usecase.AmenityUsecase {
	return &amenityService{
		amenityRepo: params.AmenityRepo,
		linkRepo:    params.LinkRepo,
		logger:      params.Logger,
	}
}

func (srv *amenityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create validates the name and stores the new amenity.
func (srv *amenityService) Create(ctx context.Context, input *usecase.CreateAmenityInput) (*entity.Amenity, error) {
	if err := validate.LettersName("name", input.Name); err != nil {
		return nil, err
	}

	now := time.Now()
	amenity := &entity.Amenity{
		ID:        uuid.New(),
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.amenityRepo.Insert(ctx, amenity); err != nil {
		return nil, errors.Wrap(err, "failed to insert amenity")
	}

	srv.log(ctx).Info("amenity created", slog.String("amenity_id", amenity.ID.String()))

	return amenity, nil
}

// Get retrieves a single amenity by ID.
func (srv *amenityService) Get(ctx context.Context, id uuid.UUID) (*entity.Amenity, error) {
	amenity, err := srv.amenityRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAmenityNotFound) {
		return nil, domainerrors.ErrAmenityNotFound.WithDetails("no amenity with id " + id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find amenity")
	}

	return amenity, nil
}

// List returns every stored amenity.
func (srv *amenityService) List(ctx context.Context) ([]*entity.Amenity, error) {
	amenities, err := srv.amenityRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list amenities")
	}

	return amenities, nil
}

// Update applies the allow-listed fields and re-stamps the update time.
func (srv *amenityService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateAmenityInput) (*entity.Amenity, error) {
	amenity, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validate.LettersName("name", *input.Name); err != nil {
			return nil, err
		}
		amenity.Name = *input.Name
	}
	amenity.UpdatedAt = time.Now()

	if err := srv.amenityRepo.Update(ctx, amenity); err != nil {
		return nil, errors.Wrap(err, "failed to update amenity")
	}

	return amenity, nil
}

// Delete removes the amenity. Join rows that reference it are kept.
func (srv *amenityService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.amenityRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrAmenityNotFound) {
		return domainerrors.ErrAmenityNotFound.WithDetails("no amenity with id " + id.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete amenity")
	}

	return nil
}

// PlacesOfAmenity scans the join collection for the amenity's places.
func (srv *amenityService) PlacesOfAmenity(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	if _, err := srv.Get(ctx, id); err != nil {
		return nil, err
	}

	placeIDs, err := srv.linkRepo.PlaceIDsOfAmenity(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places of amenity")
	}

	return placeIDs, nil
}
