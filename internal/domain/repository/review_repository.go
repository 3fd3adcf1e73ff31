package repository

import (
	"context"
	"errors"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when no review matches the given ID.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	FindAll(ctx context.Context) ([]*entity.Review, error)

	// FindByPlaceID filters the stored reviews by their place FK.
	FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*entity.Review, error)

	Insert(ctx context.Context, review *entity.Review) error

	Update(ctx context.Context, review *entity.Review) error

	Delete(ctx context.Context, id uuid.UUID) error
}
