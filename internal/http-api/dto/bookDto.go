package dto

import (
	"libraryhub/internal/http-api/models"
)

// CreateBookDTO used for POST /books
type CreateBookDTO struct {
	ISBN   string `json:"isbn" binding:"required"`
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	Genre  string `json:"genre" binding:"required"`
	Copies *int   `json:"copies" binding:"required"` // pointer so an explicit 0 passes "required"
}

// UpdateBookDTO used for PUT /books/:book_id (partial updates allowed).
// Only fields present in the request body are applied. available_copies and
// rating are the permissive administrative paths: no consistency with copies
// or with the review mean is enforced here.
type UpdateBookDTO struct {
	ISBN            *string  `json:"isbn,omitempty"`
	Title           *string  `json:"title,omitempty"`
	Author          *string  `json:"author,omitempty"`
	Genre           *string  `json:"genre,omitempty"`
	Copies          *int     `json:"copies,omitempty"`
	AvailableCopies *int     `json:"available_copies,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
}

// SetRatingDTO used for PUT /books/:book_id/rating (admin override path)
type SetRatingDTO struct {
	Rating float64 `json:"rating" binding:"required"`
}

// BookResponse DTO for responses
type BookResponse struct {
	ID              int64   `json:"id"`
	ISBN            string  `json:"isbn"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	Genre           string  `json:"genre"`
	Copies          int     `json:"copies"`
	AvailableCopies int     `json:"available_copies"`
	Rating          float64 `json:"rating"`
	BorrowedCount   int     `json:"borrowed_count"`
}

func FromModelToBookResponse(b *models.Book) *BookResponse {
	return &BookResponse{
		ID:              b.ID,
		ISBN:            b.ISBN,
		Title:           b.Title,
		Author:          b.Author,
		Genre:           b.Genre,
		Copies:          b.Copies,
		AvailableCopies: b.AvailableCopies,
		Rating:          b.Rating,
		BorrowedCount:   b.BorrowedCount,
	}
}

func FromModelsToBookResponses(books []models.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, *FromModelToBookResponse(&books[i]))
	}
	return out
}
