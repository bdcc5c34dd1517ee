package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/domain/repository"
	"qrstudio/internal/infrastructure/localstore"
	"qrstudio/pkg/errors"
)

// ReviewsKey is the store key the review collection lives under. The
// store health probe reads the same key, so it must not drift.
const ReviewsKey = "reviews"

type localstoreReviewRepository struct {
	store *localstore.Store
	mu    sync.Mutex
}

func NewLocalstoreReviewRepository(store *localstore.Store) repository.ReviewRepository {
	return &localstoreReviewRepository{
		store: store,
	}
}

func (r *localstoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews, err := r.load()
	if err != nil {
		return err
	}

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if review.Date.IsZero() {
		review.Date = time.Now()
	}

	reviews = append(reviews, *review)
	return r.save(reviews)
}

func (r *localstoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range reviews {
		if reviews[i].ID == id {
			review := reviews[i]
			return &review, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *localstoreReviewRepository) ListByStatus(ctx context.Context, status entity.ReviewStatus) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Review, 0)
	for i := range reviews {
		if reviews[i].Status == status {
			review := reviews[i]
			result = append(result, &review)
		}
	}

	// Newest first
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (r *localstoreReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews, err := r.load()
	if err != nil {
		return err
	}

	for i := range reviews {
		if reviews[i].ID == review.ID {
			reviews[i] = *review
			return r.save(reviews)
		}
	}
	return errors.NotFound("Review", nil)
}

func (r *localstoreReviewRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reviews, err := r.load()
	if err != nil {
		return err
	}

	for i := range reviews {
		if reviews[i].ID == id {
			reviews = append(reviews[:i], reviews[i+1:]...)
			return r.save(reviews)
		}
	}
	return errors.NotFound("Review", nil)
}

func (r *localstoreReviewRepository) load() ([]entity.Review, error) {
	var reviews []entity.Review
	if err := r.store.Get(ReviewsKey, &reviews); err != nil {
		return nil, errors.Internal("Failed to load reviews", err)
	}
	return reviews, nil
}

func (r *localstoreReviewRepository) save(reviews []entity.Review) error {
	if err := r.store.Put(ReviewsKey, reviews); err != nil {
		return errors.Internal("Failed to save reviews", err)
	}
	return nil
}
