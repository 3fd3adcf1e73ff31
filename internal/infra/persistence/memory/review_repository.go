package memory

import (
	"context"
	"sync"

	"homestay/internal/domain/entity"
	"homestay/internal/domain/repository"

	"github.com/google/uuid"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	mu      sync.RWMutex
	reviews map[uuid.UUID]entity.Review
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository() repository.ReviewRepository {
	return &reviewRepository{
		reviews: make(map[uuid.UUID]entity.Review),
	}
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	review, ok := repo.reviews[id]
	if !ok {
		return nil, repository.ErrReviewNotFound
	}

	return &review, nil
}

// FindAll returns every stored review.
func (repo *reviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	reviews := make([]*entity.Review, 0, len(repo.reviews))
	for _, review := range repo.reviews {
		review := review
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

// FindByPlaceID filters the stored reviews by their place FK.
func (repo *reviewRepository) FindByPlaceID(ctx context.Context, placeID uuid.UUID) ([]*entity.Review, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var reviews []*entity.Review
	for _, review := range repo.reviews {
		if review.PlaceID != placeID {
			continue
		}
		review := review
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

// Insert persists a new review entity.
func (repo *reviewRepository) Insert(ctx context.Context, review *entity.Review) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.reviews[review.ID] = *review

	return nil
}

// Update replaces an existing review entity.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.reviews[review.ID]; !ok {
		return repository.ErrReviewNotFound
	}

	repo.reviews[review.ID] = *review

	return nil
}

// Delete removes the review with the given ID.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.reviews[id]; !ok {
		return repository.ErrReviewNotFound
	}

	delete(repo.reviews, id)

	return nil
}
