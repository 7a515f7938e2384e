package dto

import "libraryhub/internal/http-api/models"

// CreateReviewDTO used for POST /books/:book_id/reviews
type CreateReviewDTO struct {
	UserID int64  `json:"user_id" binding:"required"`
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review,omitempty"`
}

// ReviewResponse DTO for responses
type ReviewResponse struct {
	ID        int64  `json:"id"`
	BookID    int64  `json:"book_id"`
	UserID    int64  `json:"user_id"`
	Rating    int    `json:"rating"`
	Review    string `json:"review,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ReviewListResponse carries all reviews of a book plus the mean recomputed
// from the current review set, not the cached book rating.
type ReviewListResponse struct {
	BookID        int64            `json:"book_id"`
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
}

func FromModelToReviewResponse(r *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        r.ID,
		BookID:    r.BookID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Review:    r.Review,
		Timestamp: r.CreatedAt.Format(TimeLayout),
	}
}

func FromModelsToReviewResponses(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, *FromModelToReviewResponse(&reviews[i]))
	}
	return out
}
