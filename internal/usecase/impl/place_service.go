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

// placeService implements the PlaceUsecase interface. It coordinates
// the largest FK surface in the system: host user, city, reviews and
// the amenity join collection.
type placeService struct {
	placeRepo   repository.PlaceRepository
	userRepo    repository.UserRepository
	cityRepo    repository.CityRepository
	reviewRepo  repository.ReviewRepository
	amenityRepo repository.AmenityRepository
	linkRepo    repository.PlaceAmenityRepository
	logger      *slog.Logger
}

// PlaceServiceParams holds dependencies for placeService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	PlaceRepo   repository.PlaceRepository
	UserRepo    repository.UserRepository
	CityRepo    repository.CityRepository
	ReviewRepo  repository.ReviewRepository
	AmenityRepo repository.AmenityRepository
	LinkRepo    repository.PlaceAmenityRepository
	Logger      *slog.Logger
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	return &placeService{
		placeRepo:   params.PlaceRepo,
		userRepo:    params.UserRepo,
		cityRepo:    params.CityRepo,
		reviewRepo:  params.ReviewRepo,
		amenityRepo: params.AmenityRepo,
		linkRepo:    params.LinkRepo,
		logger:      params.Logger,
	}
}

func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveHostID parses and checks the host user FK.
func (srv *placeService) resolveHostID(ctx context.Context, value string) (uuid.UUID, error) {
	id, err := parseID("host_user_id", value)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return uuid.Nil, domainerrors.NewValidationError("host_user_id", value, "must reference an existing user")
		}

		return uuid.Nil, errors.Wrap(err, "failed to check host reference")
	}

	return id, nil
}

// resolveCityID parses and checks the city FK.
func (srv *placeService) resolveCityID(ctx context.Context, value string) (uuid.UUID, error) {
	id, err := parseID("city_id", value)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := srv.cityRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return uuid.Nil, domainerrors.NewValidationError("city_id", value, "must reference an existing city")
		}

		return uuid.Nil, errors.Wrap(err, "failed to check city reference")
	}

	return id, nil
}

// validateNumeric checks the numeric field set shared by create and update.
func validatePlaceNumbers(latitude, longitude, price float64, rooms, bathrooms, guests int) error {
	if err := validate.Latitude("latitude", latitude); err != nil {
		return err
	}
	if err := validate.Longitude("longitude", longitude); err != nil {
		return err
	}
	if err := validate.Count("number_of_rooms", rooms); err != nil {
		return err
	}
	if err := validate.Count("bathrooms", bathrooms); err != nil {
		return err
	}
	if err := validate.Price("price_per_night", price); err != nil {
		return err
	}

	return validate.Count("max_guests", guests)
}

// Create validates the complete field set before any entity is
// materialized: name rule, both FK references and all numeric domains.
func (srv *placeService) Create(ctx context.Context, input *usecase.CreatePlaceInput) (*entity.Place, error) {
	if err := validate.SpacedName("name", input.Name); err != nil {
		return nil, err
	}
	if err := validatePlaceNumbers(
		*input.Latitude, *input.Longitude, *input.PricePerNight,
		*input.NumberOfRooms, *input.Bathrooms, *input.MaxGuests,
	); err != nil {
		return nil, err
	}
	hostID, err := srv.resolveHostID(ctx, input.HostUserID)
	if err != nil {
		return nil, err
	}
	cityID, err := srv.resolveCityID(ctx, input.CityID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	place := &entity.Place{
		ID:            uuid.New(),
		HostUserID:    hostID,
		CityID:        cityID,
		Name:          input.Name,
		Description:   input.Description,
		Address:       input.Address,
		Latitude:      *input.Latitude,
		Longitude:     *input.Longitude,
		NumberOfRooms: *input.NumberOfRooms,
		Bathrooms:     *input.Bathrooms,
		PricePerNight: *input.PricePerNight,
		MaxGuests:     *input.MaxGuests,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.placeRepo.Insert(ctx, place); err != nil {
		return nil, errors.Wrap(err, "failed to insert place")
	}

	srv.log(ctx).Info("place created", slog.String("place_id", place.ID.String()))

	return place, nil
}

// Get retrieves a single place by ID.
func (srv *placeService) Get(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	place, err := srv.placeRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPlaceNotFound) {
		return nil, domainerrors.ErrPlaceNotFound.WithDetails("no place with id " + id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find place")
	}

	return place, nil
}

// List returns every stored place.
func (srv *placeService) List(ctx context.Context) ([]*entity.Place, error) {
	places, err := srv.placeRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	return places, nil
}

// Update validates every provided field before applying any of them,
// so a rejected update leaves the place untouched.
func (srv *placeService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdatePlaceInput) (*entity.Place, error) {
	place, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Merge the candidate values, then validate the merged numbers as
	// one set so cross-field defaults stay coherent.
	candidate := *place
	if input.Name != nil {
		if err := validate.SpacedName("name", *input.Name); err != nil {
			return nil, err
		}
		candidate.Name = *input.Name
	}
	if input.Description != nil {
		candidate.Description = *input.Description
	}
	if input.Address != nil {
		candidate.Address = *input.Address
	}
	if input.Latitude != nil {
		candidate.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		candidate.Longitude = *input.Longitude
	}
	if input.NumberOfRooms != nil {
		candidate.NumberOfRooms = *input.NumberOfRooms
	}
	if input.Bathrooms != nil {
		candidate.Bathrooms = *input.Bathrooms
	}
	if input.PricePerNight != nil {
		candidate.PricePerNight = *input.PricePerNight
	}
	if input.MaxGuests != nil {
		candidate.MaxGuests = *input.MaxGuests
	}
	if err := validatePlaceNumbers(
		candidate.Latitude, candidate.Longitude, candidate.PricePerNight,
		candidate.NumberOfRooms, candidate.Bathrooms, candidate.MaxGuests,
	); err != nil {
		return nil, err
	}
	if input.HostUserID != nil {
		hostID, err := srv.resolveHostID(ctx, *input.HostUserID)
		if err != nil {
			return nil, err
		}
		candidate.HostUserID = hostID
	}
	if input.CityID != nil {
		cityID, err := srv.resolveCityID(ctx, *input.CityID)
		if err != nil {
			return nil, err
		}
		candidate.CityID = cityID
	}
	candidate.UpdatedAt = time.Now()

	if err := srv.placeRepo.Update(ctx, &candidate); err != nil {
		return nil, errors.Wrap(err, "failed to update place")
	}

	return &candidate, nil
}

// Delete removes the place. Its reviews and join rows stay behind.
func (srv *placeService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.placeRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrPlaceNotFound) {
		return domainerrors.ErrPlaceNotFound.WithDetails("no place with id " + id.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete place")
	}

	return nil
}

// HostOfPlace dereferences the place's host user FK.
func (srv *placeService) HostOfPlace(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	place, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, place.HostUserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WithDetails("no host for place with id " + id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find host of place")
	}

	return user, nil
}

// CityOfPlace dereferences the place's city FK.
func (srv *placeService) CityOfPlace(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	place, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	city, err := srv.cityRepo.FindByID(ctx, place.CityID)
	if errors.Is(err, repository.ErrCityNotFound) {
		return nil, domainerrors.ErrCityNotFound.WithDetails("no city for place with id " + id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find city of place")
	}

	return city, nil
}

// ReviewsOfPlace filters the review repository by the place FK.
func (srv *placeService) ReviewsOfPlace(ctx context.Context, id uuid.UUID) ([]*entity.Review, error) {
	if _, err := srv.Get(ctx, id); err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.FindByPlaceID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews of place")
	}

	return reviews, nil
}

// AmenityNamesOfPlace scans the join collection and resolves each
// linked amenity into its name. A dangling link is skipped rather than
// failing the whole view; deletes do not cascade into the join rows.
func (srv *placeService) AmenityNamesOfPlace(ctx context.Context, id uuid.UUID) ([]string, error) {
	if _, err := srv.Get(ctx, id); err != nil {
		return nil, err
	}

	amenityIDs, err := srv.linkRepo.AmenityIDsOfPlace(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list amenities of place")
	}

	names := make([]string, 0, len(amenityIDs))
	for _, amenityID := range amenityIDs {
		amenity, err := srv.amenityRepo.FindByID(ctx, amenityID)
		if errors.Is(err, repository.ErrAmenityNotFound) {
			continue
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve amenity name")
		}
		names = append(names, amenity.Name)
	}

	return names, nil
}

// AttachAmenity links an existing amenity to an existing place.
func (srv *placeService) AttachAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error {
	if _, err := srv.Get(ctx, placeID); err != nil {
		return err
	}
	if _, err := srv.amenityRepo.FindByID(ctx, amenityID); err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			return domainerrors.ErrAmenityNotFound.WithDetails("no amenity with id " + amenityID.String())
		}

		return errors.Wrap(err, "failed to check amenity reference")
	}

	if err := srv.linkRepo.Link(ctx, placeID, amenityID); err != nil {
		return errors.Wrap(err, "failed to link amenity")
	}

	srv.log(ctx).Info("amenity attached",
		slog.String("place_id", placeID.String()),
		slog.String("amenity_id", amenityID.String()),
	)

	return nil
}

// DetachAmenity removes a place/amenity link.
func (srv *placeService) DetachAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error {
	if _, err := srv.Get(ctx, placeID); err != nil {
		return err
	}

	if err := srv.linkRepo.Unlink(ctx, placeID, amenityID); err != nil {
		return errors.Wrap(err, "failed to unlink amenity")
	}

	return nil
}
