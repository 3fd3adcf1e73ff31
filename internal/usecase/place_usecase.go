package usecase

import (
	"context"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlaceInput defines the data required to create a new place.
// Every field is mandatory. Numeric fields are pointers so that a
// legitimate zero can be told apart from an absent field.
type CreatePlaceInput struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Address       string   `json:"address" validate:"required"`
	HostUserID    string   `json:"host_user_id" validate:"required"`
	CityID        string   `json:"city_id" validate:"required"`
	Latitude      *float64 `json:"latitude" validate:"required"`
	Longitude     *float64 `json:"longitude" validate:"required"`
	NumberOfRooms *int     `json:"number_of_rooms" validate:"required"`
	Bathrooms     *int     `json:"bathrooms" validate:"required"`
	PricePerNight *float64 `json:"price_per_night" validate:"required"`
	MaxGuests     *int     `json:"max_guests" validate:"required"`
}

// UpdatePlaceInput defines the partial body accepted by the place
// update path. The mutable set is identical to the create set.
type UpdatePlaceInput struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Address       *string  `json:"address"`
	HostUserID    *string  `json:"host_user_id"`
	CityID        *string  `json:"city_id"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	NumberOfRooms *int     `json:"number_of_rooms"`
	Bathrooms     *int     `json:"bathrooms"`
	PricePerNight *float64 `json:"price_per_night"`
	MaxGuests     *int     `json:"max_guests"`
}

// PlaceUsecase defines the interface for place-related business
// operations, including the derived views hanging off a place.
type PlaceUsecase interface {
	Create(ctx context.Context, input *CreatePlaceInput) (*entity.Place, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Place, error)
	List(ctx context.Context) ([]*entity.Place, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdatePlaceInput) (*entity.Place, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// HostOfPlace dereferences the place's host user FK.
	HostOfPlace(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// CityOfPlace dereferences the place's city FK.
	CityOfPlace(ctx context.Context, id uuid.UUID) (*entity.City, error)

	// ReviewsOfPlace returns the reviews filed against the place.
	ReviewsOfPlace(ctx context.Context, id uuid.UUID) ([]*entity.Review, error)

	// AmenityNamesOfPlace resolves the join collection into amenity names.
	AmenityNamesOfPlace(ctx context.Context, id uuid.UUID) ([]string, error)

	// AttachAmenity links an existing amenity to an existing place.
	AttachAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error

	// DetachAmenity removes a place/amenity link.
	DetachAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error
}
