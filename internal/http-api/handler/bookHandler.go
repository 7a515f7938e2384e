package handler

import (
	"net/http"
	"strconv"

	"libraryhub/internal/http-api/dto"
	"libraryhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	bookService service.BookService
}

func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// RegisterRoutes registers book-related routes
func (h *BookHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.List)
	router.GET("/search", h.SearchByTitle)
	router.GET("/suggest", h.SuggestByGenre)
	router.GET("/popular", h.MostBorrowed)
	router.GET("/:book_id", h.Get)
	router.POST("", h.Create)
	router.PUT("/:book_id", h.Update)
	router.DELETE("/:book_id", h.Delete)
	router.PUT("/:book_id/rating", h.SetRating)
}

// List returns every book in the catalog
// GET /books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToBookResponses(books))
}

// Get returns a single book by ID
// GET /books/:book_id
func (h *BookHandler) Get(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	book, err := h.bookService.GetByID(c.Request.Context(), bookID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToBookResponse(book))
}

// Create adds a new book to the catalog
// POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := h.bookService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Book added successfully!",
		"book":    dto.FromModelToBookResponse(book),
	})
}

// Update applies a partial update to a book
// PUT /books/:book_id
func (h *BookHandler) Update(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	var req dto.UpdateBookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.bookService.Update(c.Request.Context(), bookID, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book updated successfully!"})
}

// Delete removes a book. Borrowings and reviews that reference it are not
// cascade-deleted.
// DELETE /books/:book_id
func (h *BookHandler) Delete(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	if err := h.bookService.Delete(c.Request.Context(), bookID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book removed successfully"})
}

// SearchByTitle matches books by title substring, case-insensitive
// GET /books/search?title=...
func (h *BookHandler) SearchByTitle(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title parameter is required"})
		return
	}

	books, err := h.bookService.SearchByTitle(c.Request.Context(), title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToBookResponses(books))
}

// SuggestByGenre suggests books matching a genre, optionally filtered by
// minimum rating and availability
// GET /books/suggest?genre=...&min_rating=...&available_only=true
func (h *BookHandler) SuggestByGenre(c *gin.Context) {
	genre := c.Query("genre")
	if genre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "genre parameter is required"})
		return
	}

	var minRating *float64
	if raw := c.Query("min_rating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_rating"})
			return
		}
		minRating = &parsed
	}

	availableOnly := false
	if raw := c.Query("available_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid available_only"})
			return
		}
		availableOnly = parsed
	}

	books, err := h.bookService.SuggestByGenre(c.Request.Context(), genre, minRating, availableOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToBookResponses(books))
}

// SetRating overwrites a book's rating directly, bypassing the review mean
// PUT /books/:book_id/rating
func (h *BookHandler) SetRating(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("book_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	var req dto.SetRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.bookService.SetRating(c.Request.Context(), bookID, req.Rating); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Rating updated!"})
}

// MostBorrowed returns the books ranked by cumulative borrow events
// GET /books/popular?limit=...
func (h *BookHandler) MostBorrowed(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	books, err := h.bookService.MostBorrowed(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToBookResponses(books))
}
