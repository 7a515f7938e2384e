package handler

import (
	"net/http"
	"strconv"

	"libraryhub/internal/http-api/dto"
	"libraryhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review routes under the books group
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/:book_id/reviews")
	{
		reviews.POST("", h.Create)
		reviews.GET("", h.List)
	}
}

// Create appends a review and recomputes the book's average rating
// POST /books/:book_id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, average, err := h.reviewService.AddReview(c.Request.Context(), bookID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":        "Review added successfully!",
		"review":         dto.FromModelToReviewResponse(review),
		"average_rating": average,
	})
}

// List returns all reviews of a book plus the freshly computed mean
// GET /books/:book_id/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	reviews, average, err := h.reviewService.ListReviews(c.Request.Context(), bookID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ReviewListResponse{
		BookID:        bookID,
		Reviews:       dto.FromModelsToReviewResponses(reviews),
		AverageRating: average,
	})
}
