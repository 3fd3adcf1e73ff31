package repository

import (
	"context"
	"errors"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlaceNotFound is returned when no place matches the given ID.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository defines the standard operations for place persistence.
type PlaceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)

	FindAll(ctx context.Context) ([]*entity.Place, error)

	Insert(ctx context.Context, place *entity.Place) error

	Update(ctx context.Context, place *entity.Place) error

	Delete(ctx context.Context, id uuid.UUID) error
}
