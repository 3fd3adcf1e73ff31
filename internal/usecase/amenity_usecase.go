package usecase

import (
	"context"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAmenityInput defines the data required to create a new amenity.
type CreateAmenityInput struct {
	Name string `json:"name" validate:"required"`
}

// UpdateAmenityInput defines the partial body accepted by the amenity update path.
type UpdateAmenityInput struct {
	Name *string `json:"name"`
}

// AmenityUsecase defines the interface for amenity-related business operations.
type AmenityUsecase interface {
	Create(ctx context.Context, input *CreateAmenityInput) (*entity.Amenity, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Amenity, error)
	List(ctx context.Context) ([]*entity.Amenity, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateAmenityInput) (*entity.Amenity, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// PlacesOfAmenity scans the join collection and returns the IDs of
	// the places offering the amenity.
	PlacesOfAmenity(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
}
