package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"libraryhub/internal/http-api/models"
	"libraryhub/internal/shared"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewRepository owns review records and the review-derived book rating.
// AddAndRecalculate keeps the insert and the mean recomputation in one
// transaction so two concurrent reviews for the same book cannot compute the
// mean from a stale review set.
type ReviewRepository interface {
	AddAndRecalculate(ctx context.Context, review *models.Review) (float64, error)
	ListByBook(ctx context.Context, bookID int64) ([]models.Review, float64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) AddAndRecalculate(ctx context.Context, review *models.Review) (float64, error) {
	var average float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// lock the book row first so concurrent reviews of the same book
		// serialize around the recomputation
		var book models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&book, review.BookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NotFound("book")
			}
			return fmt.Errorf("lock book: %w", err)
		}

		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		avg, err := averageRating(tx, review.BookID)
		if err != nil {
			return err
		}
		average = avg

		if err := tx.Model(&book).Update("rating", average).Error; err != nil {
			return fmt.Errorf("update book rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return average, nil
}

// ListByBook returns all reviews of the book together with the mean computed
// fresh from the current review set (the cached book rating may have been
// overwritten by the direct-set path).
func (r *reviewRepository) ListByBook(ctx context.Context, bookID int64) ([]models.Review, float64, error) {
	db := r.db.WithContext(ctx)

	var book models.Book
	if err := db.First(&book, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, shared.NotFound("book")
		}
		return nil, 0, fmt.Errorf("get book: %w", err)
	}

	var reviews []models.Review
	if err := db.Where("book_id = ?", bookID).Order("id asc").Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}

	average, err := averageRating(db, bookID)
	if err != nil {
		return nil, 0, err
	}
	return reviews, average, nil
}

// averageRating computes the mean rating over all reviews of the book,
// rounded to 2 decimal places; 0.0 when no reviews exist.
func averageRating(db *gorm.DB, bookID int64) (float64, error) {
	var result struct {
		Average float64
	}
	if err := db.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average").
		Where("book_id = ?", bookID).
		Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("average rating: %w", err)
	}
	return Round2(result.Average), nil
}

// Round2 rounds to 2 decimal places, the precision used for all derived
// ratings at the boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
