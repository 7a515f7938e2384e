package service

import (
	"context"
	"time"

	"libraryhub/internal/http-api/cache"
	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"
)

type BorrowService interface {
	Borrow(ctx context.Context, userID, bookID int64) (*models.Borrowing, error)
	Return(ctx context.Context, userID, bookID int64) (*models.Borrowing, error)
	ListActive(ctx context.Context, userID int64) ([]models.Borrowing, error)
	ListReturned(ctx context.Context, userID int64) ([]models.Borrowing, error)
}

type borrowService struct {
	ledger repository.BorrowingRepository
	cache  *cache.BookCache // optional, nil disables caching
	now    func() time.Time
}

func NewBorrowService(ledger repository.BorrowingRepository, bookCache *cache.BookCache) BorrowService {
	return &borrowService{
		ledger: ledger,
		cache:  bookCache,
		now:    time.Now,
	}
}

// Borrow runs the full borrow transition. All precondition checks and both
// book counter updates happen inside the ledger transaction; the service only
// supplies the clock and keeps the cache honest afterwards.
func (s *borrowService) Borrow(ctx context.Context, userID, bookID int64) (*models.Borrowing, error) {
	borrowing, err := s.ledger.Borrow(ctx, userID, bookID, s.now())
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, bookID)
	}
	return borrowing, nil
}

func (s *borrowService) Return(ctx context.Context, userID, bookID int64) (*models.Borrowing, error) {
	borrowing, err := s.ledger.Return(ctx, userID, bookID, s.now())
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, bookID)
	}
	return borrowing, nil
}

func (s *borrowService) ListActive(ctx context.Context, userID int64) ([]models.Borrowing, error) {
	return s.ledger.ListActive(ctx, userID)
}

func (s *borrowService) ListReturned(ctx context.Context, userID int64) ([]models.Borrowing, error) {
	return s.ledger.ListReturned(ctx, userID)
}
