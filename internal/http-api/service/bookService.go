package service

import (
	"context"

	"libraryhub/internal/http-api/cache"
	"libraryhub/internal/http-api/dto"
	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"
	"libraryhub/internal/shared"
)

type BookService interface {
	GetAll(ctx context.Context) ([]models.Book, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, req dto.CreateBookDTO) (*models.Book, error)
	Update(ctx context.Context, id int64, req dto.UpdateBookDTO) error
	Delete(ctx context.Context, id int64) error
	SearchByTitle(ctx context.Context, title string) ([]models.Book, error)
	SuggestByGenre(ctx context.Context, genre string, minRating *float64, availableOnly bool) ([]models.Book, error)
	SetRating(ctx context.Context, id int64, rating float64) error
	MostBorrowed(ctx context.Context, limit int) ([]models.Book, error)
}

type bookService struct {
	repo  *repository.BookRepo
	cache *cache.BookCache // optional, nil disables caching
}

func NewBookService(repo *repository.BookRepo, bookCache *cache.BookCache) BookService {
	return &bookService{repo: repo, cache: bookCache}
}

func (s *bookService) GetAll(ctx context.Context) ([]models.Book, error) {
	return s.repo.GetAll(ctx)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	if s.cache != nil {
		if book, ok := s.cache.Get(ctx, id); ok {
			return book, nil
		}
	}
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, book)
	}
	return book, nil
}

func (s *bookService) Create(ctx context.Context, req dto.CreateBookDTO) (*models.Book, error) {
	copies := *req.Copies
	if copies < 0 {
		return nil, shared.InvalidInput("copies", "must not be negative")
	}
	book := &models.Book{
		ISBN:            req.ISBN,
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		Copies:          copies,
		AvailableCopies: copies,
		Rating:          0.0,
		BorrowedCount:   0,
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Update applies only the fields present in the request. available_copies
// and rating pass through unchecked; this is the administrative override
// path, kept as permissive as the original behavior.
func (s *bookService) Update(ctx context.Context, id int64, req dto.UpdateBookDTO) error {
	fields := map[string]interface{}{}
	if req.ISBN != nil {
		fields["isbn"] = *req.ISBN
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Author != nil {
		fields["author"] = *req.Author
	}
	if req.Genre != nil {
		fields["genre"] = *req.Genre
	}
	if req.Copies != nil {
		fields["copies"] = *req.Copies
	}
	if req.AvailableCopies != nil {
		fields["available_copies"] = *req.AvailableCopies
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return nil
}

func (s *bookService) SearchByTitle(ctx context.Context, title string) ([]models.Book, error) {
	return s.repo.SearchByTitle(ctx, title)
}

func (s *bookService) SuggestByGenre(ctx context.Context, genre string, minRating *float64, availableOnly bool) ([]models.Book, error) {
	return s.repo.SuggestByGenre(ctx, genre, minRating, availableOnly)
}

// SetRating is the direct-set rating path. It bypasses the review-derived
// mean on purpose and performs no range validation, matching the legacy
// behavior it replaces.
func (s *bookService) SetRating(ctx context.Context, id int64, rating float64) error {
	if err := s.repo.SetRating(ctx, id, rating); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return nil
}

func (s *bookService) MostBorrowed(ctx context.Context, limit int) ([]models.Book, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.MostBorrowed(ctx, limit)
}
