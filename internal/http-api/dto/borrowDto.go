package dto

import (
	"time"

	"libraryhub/internal/http-api/models"
)

// TimeLayout is the boundary rendering for all date/time values.
const TimeLayout = "2006-01-02 15:04:05"

// BorrowRequestDTO used for POST /borrow and POST /return
type BorrowRequestDTO struct {
	UserID int64 `json:"user_id" binding:"required"`
	BookID int64 `json:"book_id" binding:"required"`
}

// BorrowResponse is returned from a successful borrow.
type BorrowResponse struct {
	BorrowID int64  `json:"borrow_id"`
	DueDate  string `json:"due_date"`
}

// BorrowedBookResponse is one entry of a user's borrowing list, joined with
// the book's current attributes at read time.
type BorrowedBookResponse struct {
	BorrowID   int64  `json:"borrow_id"`
	BookID     int64  `json:"book_id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Genre      string `json:"genre"`
	BorrowDate string `json:"borrow_date"`
	DueDate    string `json:"due_date"`
	ReturnDate string `json:"return_date,omitempty"`
}

func FromModelToBorrowResponse(b *models.Borrowing) *BorrowResponse {
	return &BorrowResponse{
		BorrowID: b.ID,
		DueDate:  b.DueDate.Format(TimeLayout),
	}
}

func FromModelToBorrowedBookResponse(b *models.Borrowing) *BorrowedBookResponse {
	resp := &BorrowedBookResponse{
		BorrowID:   b.ID,
		BookID:     b.BookID,
		BorrowDate: b.BorrowDate.Format(TimeLayout),
		DueDate:    b.DueDate.Format(TimeLayout),
	}
	if b.Book != nil {
		resp.Title = b.Book.Title
		resp.Author = b.Book.Author
		resp.Genre = b.Book.Genre
	}
	if b.ReturnDate != nil {
		resp.ReturnDate = b.ReturnDate.Format(TimeLayout)
	}
	return resp
}

func FromModelsToBorrowedBookResponses(borrowings []models.Borrowing) []BorrowedBookResponse {
	out := make([]BorrowedBookResponse, 0, len(borrowings))
	for i := range borrowings {
		out = append(out, *FromModelToBorrowedBookResponse(&borrowings[i]))
	}
	return out
}

// FormatTime renders t in the boundary layout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}
