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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	placeRepo  repository.PlaceRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	UserRepo   repository.UserRepository
	PlaceRepo  repository.PlaceRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		userRepo:   params.UserRepo,
		placeRepo:  params.PlaceRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveCommentorID parses and checks the commentor FK.
func (srv *reviewService) resolveCommentorID(ctx context.Context, value string) (uuid.UUID, error) {
	id, err := parseID("commentor_user_id", value)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := srv.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return uuid.Nil, domainerrors.NewValidationError("commentor_user_id", value, "must reference an existing user")
		}

		return uuid.Nil, errors.Wrap(err, "failed to check commentor reference")
	}

	return id, nil
}

// resolvePlaceID parses and checks the place FK.
func (srv *reviewService) resolvePlaceID(ctx context.Context, value string) (uuid.UUID, error) {
	id, err := parseID("place_id", value)
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := srv.placeRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return uuid.Nil, domainerrors.NewValidationError("place_id", value, "must reference an existing place")
		}

		return uuid.Nil, errors.Wrap(err, "failed to check place reference")
	}

	return id, nil
}

// Create validates the full field set, including both FK references,
// before any entity is materialized. The FK checks are read-only, so
// no rollback is needed even though two repositories are consulted.
func (srv *reviewService) Create(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if err := validate.NonEmpty("feedback", input.Feedback); err != nil {
		return nil, err
	}
	if err := validate.Rating("rating", *input.Rating); err != nil {
		return nil, err
	}
	commentorID, err := srv.resolveCommentorID(ctx, input.CommentorUserID)
	if err != nil {
		return nil, err
	}
	placeID, err := srv.resolvePlaceID(ctx, input.PlaceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	review := &entity.Review{
		ID:              uuid.New(),
		Feedback:        input.Feedback,
		CommentorUserID: commentorID,
		PlaceID:         placeID,
		Rating:          *input.Rating,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := srv.reviewRepo.Insert(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to insert review")
	}

	srv.log(ctx).Info("review created", slog.String("review_id", review.ID.String()))

	return review, nil
}

// Get retrieves a single review by ID.
func (srv *reviewService) Get(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return nil, domainerrors.ErrReviewNotFound.WithDetails("no review with id " + id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// List returns every stored review.
func (srv *reviewService) List(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// Update validates every provided field before applying any of them.
func (srv *reviewService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	review, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Feedback != nil {
		if err := validate.NonEmpty("feedback", *input.Feedback); err != nil {
			return nil, err
		}
	}
	if input.Rating != nil {
		if err := validate.Rating("rating", *input.Rating); err != nil {
			return nil, err
		}
	}
	var commentorID, placeID uuid.UUID
	if input.CommentorUserID != nil {
		commentorID, err = srv.resolveCommentorID(ctx, *input.CommentorUserID)
		if err != nil {
			return nil, err
		}
	}
	if input.PlaceID != nil {
		placeID, err = srv.resolvePlaceID(ctx, *input.PlaceID)
		if err != nil {
			return nil, err
		}
	}

	if input.Feedback != nil {
		review.Feedback = *input.Feedback
	}
	if input.Rating != nil {
		review.Rating = *input.Rating
	}
	if input.CommentorUserID != nil {
		review.CommentorUserID = commentorID
	}
	if input.PlaceID != nil {
		review.PlaceID = placeID
	}
	review.UpdatedAt = time.Now()

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// Delete removes the review.
func (srv *reviewService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.reviewRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrReviewNotFound) {
		return domainerrors.ErrReviewNotFound.WithDetails("no review with id " + id.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// PlaceOfReview dereferences the review's place FK.
func (srv *reviewService) PlaceOfReview(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	review, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	place, err := srv.placeRepo.FindByID(ctx, review.PlaceID)
	if errors.Is(err, repository.ErrPlaceNotFound) {
		return nil, domainerrors.ErrPlaceNotFound.WithDetails("no place for review with id " + id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find place of review")
	}

	return place, nil
}

// UserOfReview dereferences the review's commentor FK.
func (srv *reviewService) UserOfReview(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	review, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, review.CommentorUserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WithDetails("no user for review with id " + id.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user of review")
	}

	return user, nil
}
