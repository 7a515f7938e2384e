package handler

import (
	"net/http"
	"strconv"

	"libraryhub/internal/http-api/dto"
	"libraryhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type BorrowHandler struct {
	borrowService service.BorrowService
}

func NewBorrowHandler(borrowService service.BorrowService) *BorrowHandler {
	return &BorrowHandler{borrowService: borrowService}
}

// RegisterRoutes registers borrowing-related routes on the engine root, the
// same flat shape the original API exposed.
func (h *BorrowHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/borrow", h.Borrow)
	router.POST("/return", h.Return)
	router.GET("/borrowed-books/:user_id", h.ListActive)
	router.GET("/returned-books/:user_id", h.ListReturned)
}

// Borrow lends one copy of a book to a user
// POST /borrow
func (h *BorrowHandler) Borrow(c *gin.Context) {
	var req dto.BorrowRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	borrowing, err := h.borrowService.Borrow(c.Request.Context(), req.UserID, req.BookID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Book borrowed successfully!",
		"borrow_id": borrowing.ID,
		"due_date":  borrowing.DueDate.Format(dto.TimeLayout),
	})
}

// Return closes the user's active borrowing of the book
// POST /return
func (h *BorrowHandler) Return(c *gin.Context) {
	var req dto.BorrowRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.borrowService.Return(c.Request.Context(), req.UserID, req.BookID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book returned successfully!"})
}

// ListActive returns the user's open borrowings joined with current book data
// GET /borrowed-books/:user_id
func (h *BorrowHandler) ListActive(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	borrowings, err := h.borrowService.ListActive(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToBorrowedBookResponses(borrowings))
}

// ListReturned returns the user's closed borrowings joined with current book data
// GET /returned-books/:user_id
func (h *BorrowHandler) ListReturned(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	borrowings, err := h.borrowService.ListReturned(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToBorrowedBookResponses(borrowings))
}
