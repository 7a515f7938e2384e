package handler

import (
	"errors"
	"net/http"

	"libraryhub/internal/shared"

	"github.com/gin-gonic/gin"
)

// respondError maps the domain error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is an internal error and the detail stays
// out of the response body.
func respondError(c *gin.Context, err error) {
	var notFound *shared.NotFoundError
	var conflict *shared.ConflictError
	var invalid *shared.InvalidInputError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
