package memory

import (
	"context"
	"testing"
	"time"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReview(placeID uuid.UUID) *entity.Review {
	now := time.Now()

	return &entity.Review{
		ID:              uuid.New(),
		Feedback:        "lovely stay",
		CommentorUserID: uuid.New(),
		PlaceID:         placeID,
		Rating:          4,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func TestReviewRepository_DeleteThenFind(t *testing.T) {
	repo := NewReviewRepository()
	ctx := context.Background()

	review := newReview(uuid.New())
	require.NoError(t, repo.Insert(ctx, review))
	require.NoError(t, repo.Delete(ctx, review.ID))

	_, err := repo.FindByID(ctx, review.ID)
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
}

func TestCityRepository_FindByCountryID(t *testing.T) {
	repo := NewCityRepository()
	ctx := context.Background()

	countryID := uuid.New()
	now := time.Now()
	for _, name := range []string{"Gotham", "Metropolis"} {
		city := &entity.City{
			ID:        uuid.New(),
			Name:      name,
			CountryID: countryID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, repo.Insert(ctx, city))
	}
	other := &entity.City{ID: uuid.New(), Name: "Duckburg", CountryID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Insert(ctx, other))

	cities, err := repo.FindByCountryID(ctx, countryID)
	require.NoError(t, err)
	assert.Len(t, cities, 2)
}
