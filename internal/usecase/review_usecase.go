package usecase

import (
	"context"

	"homestay/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to create a new review.
// Rating is a pointer so that an explicit 0 can be told apart from an
// absent field.
type CreateReviewInput struct {
	Feedback        string `json:"feedback" validate:"required"`
	CommentorUserID string `json:"commentor_user_id" validate:"required"`
	PlaceID         string `json:"place_id" validate:"required"`
	Rating          *int   `json:"rating" validate:"required"`
}

// UpdateReviewInput defines the partial body accepted by the review
// update path. Every review field is mutable.
type UpdateReviewInput struct {
	Feedback        *string `json:"feedback"`
	CommentorUserID *string `json:"commentor_user_id"`
	PlaceID         *string `json:"place_id"`
	Rating          *int    `json:"rating"`
}

// ReviewUsecase defines the interface for review-related business operations.
type ReviewUsecase interface {
	Create(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	List(ctx context.Context) ([]*entity.Review, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// PlaceOfReview dereferences the review's place FK.
	PlaceOfReview(ctx context.Context, id uuid.UUID) (*entity.Place, error)

	// UserOfReview dereferences the review's commentor FK.
	UserOfReview(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
