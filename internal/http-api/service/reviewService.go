package service

import (
	"context"

	"libraryhub/internal/http-api/cache"
	"libraryhub/internal/http-api/dto"
	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"
	"libraryhub/internal/shared"
)

type ReviewService interface {
	AddReview(ctx context.Context, bookID int64, req dto.CreateReviewDTO) (*models.Review, float64, error)
	ListReviews(ctx context.Context, bookID int64) ([]models.Review, float64, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
	cache   *cache.BookCache // optional, nil disables caching
}

func NewReviewService(reviews repository.ReviewRepository, bookCache *cache.BookCache) ReviewService {
	return &reviewService{reviews: reviews, cache: bookCache}
}

// AddReview appends a review and returns the recomputed mean. The reviewer's
// user id is recorded as given without a membership check; reviews are open
// to unregistered callers and that looseness is intentional.
func (s *reviewService) AddReview(ctx context.Context, bookID int64, req dto.CreateReviewDTO) (*models.Review, float64, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, 0, shared.InvalidInput("rating", "must be between 1 and 5")
	}
	review := &models.Review{
		BookID: bookID,
		UserID: req.UserID,
		Rating: req.Rating,
		Review: req.Review,
	}
	average, err := s.reviews.AddAndRecalculate(ctx, review)
	if err != nil {
		return nil, 0, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, bookID)
	}
	return review, average, nil
}

func (s *reviewService) ListReviews(ctx context.Context, bookID int64) ([]models.Review, float64, error) {
	return s.reviews.ListByBook(ctx, bookID)
}
