package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"libraryhub/internal/http-api/models"
	"libraryhub/internal/shared"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LoanPeriod is the fixed borrowing window. Due date is always
// borrow date + 14 days.
const LoanPeriod = 14 * 24 * time.Hour

// BorrowingRepository is the borrowing ledger. Borrow and Return each run as
// one database transaction: the book row is locked FOR UPDATE first, so all
// borrows and returns of the same book serialize, availability can never be
// oversold, and no caller observes a half-applied transition.
type BorrowingRepository interface {
	Borrow(ctx context.Context, userID, bookID int64, now time.Time) (*models.Borrowing, error)
	Return(ctx context.Context, userID, bookID int64, now time.Time) (*models.Borrowing, error)
	ListActive(ctx context.Context, userID int64) ([]models.Borrowing, error)
	ListReturned(ctx context.Context, userID int64) ([]models.Borrowing, error)
}

type borrowingRepository struct {
	db *gorm.DB
}

func NewBorrowingRepository(db *gorm.DB) BorrowingRepository {
	return &borrowingRepository{db: db}
}

// Borrow checks the preconditions in order (user exists, book exists, no
// active borrowing for the pair, copies available), then decrements
// available_copies, increments borrowed_count and records the loan, all
// inside one transaction.
func (r *borrowingRepository) Borrow(ctx context.Context, userID, bookID int64, now time.Time) (*models.Borrowing, error) {
	var borrowing *models.Borrowing

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NotFound("user")
			}
			return fmt.Errorf("check user: %w", err)
		}

		var book models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&book, bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NotFound("book")
			}
			return fmt.Errorf("lock book: %w", err)
		}

		var active int64
		if err := tx.Model(&models.Borrowing{}).
			Where("user_id = ? AND book_id = ? AND return_date IS NULL", userID, bookID).
			Count(&active).Error; err != nil {
			return fmt.Errorf("check active borrowing: %w", err)
		}
		if active > 0 {
			return shared.Conflict("already borrowed")
		}

		if book.AvailableCopies <= 0 {
			return shared.Conflict("no copies available")
		}

		if err := tx.Model(&book).Updates(map[string]interface{}{
			"available_copies": gorm.Expr("available_copies - 1"),
			"borrowed_count":   gorm.Expr("borrowed_count + 1"),
		}).Error; err != nil {
			return fmt.Errorf("update book counters: %w", err)
		}

		borrowing = &models.Borrowing{
			UserID:     userID,
			BookID:     bookID,
			BorrowDate: now,
			DueDate:    now.Add(LoanPeriod),
		}
		if err := tx.Create(borrowing).Error; err != nil {
			// the partial unique index is the backstop for concurrent
			// borrows of the same pair
			if isUniqueViolation(err) {
				return shared.Conflict("already borrowed")
			}
			return fmt.Errorf("create borrowing: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return borrowing, nil
}

// Return closes the unique active borrowing for the pair and increments
// available_copies. The increment is intentionally not capped against
// copies; the permissive administrative update path can produce overshoot
// and that behavior is preserved.
func (r *borrowingRepository) Return(ctx context.Context, userID, bookID int64, now time.Time) (*models.Borrowing, error) {
	var borrowing *models.Borrowing

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book models.Book
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&book, bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NotFound("book")
			}
			return fmt.Errorf("lock book: %w", err)
		}

		var b models.Borrowing
		if err := tx.Where("user_id = ? AND book_id = ? AND return_date IS NULL", userID, bookID).
			First(&b).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NotFound("active borrowing")
			}
			return fmt.Errorf("find active borrowing: %w", err)
		}

		res := tx.Model(&models.Borrowing{}).
			Where("id = ? AND return_date IS NULL", b.ID).
			Update("return_date", now)
		if res.Error != nil {
			return fmt.Errorf("close borrowing: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return shared.NotFound("active borrowing")
		}

		if err := tx.Model(&book).
			Update("available_copies", gorm.Expr("available_copies + 1")).Error; err != nil {
			return fmt.Errorf("update book counters: %w", err)
		}

		b.ReturnDate = &now
		borrowing = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return borrowing, nil
}

func (r *borrowingRepository) ListActive(ctx context.Context, userID int64) ([]models.Borrowing, error) {
	var list []models.Borrowing
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ? AND return_date IS NULL", userID).
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list active borrowings: %w", err)
	}
	return list, nil
}

func (r *borrowingRepository) ListReturned(ctx context.Context, userID int64) ([]models.Borrowing, error) {
	var list []models.Borrowing
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ? AND return_date IS NOT NULL", userID).
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list returned borrowings: %w", err)
	}
	return list, nil
}
