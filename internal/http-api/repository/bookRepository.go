package repository

import (
	"context"
	"errors"
	"fmt"

	"libraryhub/internal/http-api/models"
	"libraryhub/internal/shared"

	"gorm.io/gorm"
)

type BookRepo struct {
	db *gorm.DB
}

func NewBookRepo(db *gorm.DB) *BookRepo {
	return &BookRepo{db: db}
}

func (r *BookRepo) GetAll(ctx context.Context) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return list, nil
}

func (r *BookRepo) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("book")
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return &b, nil
}

func (r *BookRepo) Create(ctx context.Context, b *models.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.Conflict("a book with this ISBN already exists")
		}
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update. Only the columns present in fields
// are written; no cross-field consistency is enforced, so an administrative
// caller may set available_copies above copies or overwrite the derived
// rating. Keeping that permissiveness is deliberate.
func (r *BookRepo) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		// still report missing books for empty updates
		_, err := r.GetByID(ctx, id)
		return err
	}
	res := r.db.WithContext(ctx).Model(&models.Book{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return shared.Conflict("a book with this ISBN already exists")
		}
		return fmt.Errorf("update book: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.NotFound("book")
	}
	return nil
}

// Delete removes the book row only. Borrowings and reviews that reference it
// are left in place; orphaned references are accepted behavior.
func (r *BookRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Book{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete book: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.NotFound("book")
	}
	return nil
}

// SearchByTitle performs a case-insensitive substring match on title.
func (r *BookRepo) SearchByTitle(ctx context.Context, title string) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Where("title ILIKE ?", "%"+title+"%").
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("search books by title: %w", err)
	}
	return list, nil
}

// SuggestByGenre matches the genre case-insensitively as a substring and
// optionally filters by minimum rating and availability.
func (r *BookRepo) SuggestByGenre(ctx context.Context, genre string, minRating *float64, availableOnly bool) ([]models.Book, error) {
	var list []models.Book
	q := r.db.WithContext(ctx).Where("genre ILIKE ?", "%"+genre+"%")
	if minRating != nil {
		q = q.Where("rating >= ?", *minRating)
	}
	if availableOnly {
		q = q.Where("available_copies > 0")
	}
	if err := q.Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("suggest books by genre: %w", err)
	}
	return list, nil
}

// SetRating overwrites the cached rating unconditionally. This is the legacy
// direct-set path and can desynchronize the cached value from the review
// mean until the next review arrives.
func (r *BookRepo) SetRating(ctx context.Context, id int64, rating float64) error {
	res := r.db.WithContext(ctx).Model(&models.Book{}).Where("id = ?", id).Update("rating", rating)
	if res.Error != nil {
		return fmt.Errorf("set book rating: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return shared.NotFound("book")
	}
	return nil
}

// MostBorrowed returns up to limit books ranked by total borrow events.
func (r *BookRepo) MostBorrowed(ctx context.Context, limit int) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Order("borrowed_count desc, id asc").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list most borrowed books: %w", err)
	}
	return list, nil
}
