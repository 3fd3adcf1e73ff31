package repository

import (
	"context"
	"errors"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAmenityNotFound is returned when no amenity matches the given ID.
var ErrAmenityNotFound = errors.New("amenity not found")

// AmenityRepository defines the standard operations for amenity persistence.
type AmenityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Amenity, error)

	FindAll(ctx context.Context) ([]*entity.Amenity, error)

	Insert(ctx context.Context, amenity *entity.Amenity) error

	Update(ctx context.Context, amenity *entity.Amenity) error

	Delete(ctx context.Context, id uuid.UUID) error
}
