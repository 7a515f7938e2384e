package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"libraryhub/internal/http-api/dto"
	"libraryhub/internal/http-api/handler"
	"libraryhub/internal/http-api/models"
	"libraryhub/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) AddReview(ctx context.Context, bookID int64, req dto.CreateReviewDTO) (*models.Review, float64, error) {
	args := m.Called(ctx, bookID, req)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*models.Review), args.Get(1).(float64), args.Error(2)
}

func (m *MockReviewService) ListReviews(ctx context.Context, bookID int64) ([]models.Review, float64, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Review), args.Get(1).(float64), args.Error(2)
}

// --- SETUP ---

func setupReviewRouter(mockService *MockReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewReviewHandler(mockService)
	h.RegisterRoutes(r.Group("/books"))
	return r
}

// --- TESTS ---

func TestReviewHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService)

		created := time.Date(2025, 4, 2, 12, 0, 0, 0, time.UTC)
		mockService.On("AddReview", mock.Anything, int64(1), dto.CreateReviewDTO{
			UserID: 5, Rating: 4, Review: "solid",
		}).Return(&models.Review{
			ID: 10, BookID: 1, UserID: 5, Rating: 4, Review: "solid", CreatedAt: created,
		}, 4.0, nil).Once()

		body, _ := json.Marshal(map[string]interface{}{"user_id": 5, "rating": 4, "review": "solid"})
		req, _ := http.NewRequest(http.MethodPost, "/books/1/reviews", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, 4.0, resp["average_rating"])
		review := resp["review"].(map[string]interface{})
		assert.Equal(t, "2025-04-02 12:00:00", review["timestamp"])
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService)

		mockService.On("AddReview", mock.Anything, int64(1), mock.Anything).
			Return(nil, 0.0, shared.InvalidInput("rating", "must be between 1 and 5")).Once()

		body, _ := json.Marshal(map[string]interface{}{"user_id": 5, "rating": 6})
		req, _ := http.NewRequest(http.MethodPost, "/books/1/reviews", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid rating")
	})

	t.Run("BookNotFound", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService)

		mockService.On("AddReview", mock.Anything, int64(42), mock.Anything).
			Return(nil, 0.0, shared.NotFound("book")).Once()

		body, _ := json.Marshal(map[string]interface{}{"user_id": 5, "rating": 3})
		req, _ := http.NewRequest(http.MethodPost, "/books/42/reviews", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReviewHandler_List(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService)

		mockService.On("ListReviews", mock.Anything, int64(1)).Return([]models.Review{
			{ID: 1, BookID: 1, UserID: 5, Rating: 4},
			{ID: 2, BookID: 1, UserID: 6, Rating: 2},
		}, 3.0, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/books/1/reviews", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.ReviewListResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Len(t, resp.Reviews, 2)
		assert.Equal(t, 3.0, resp.AverageRating)
	})

	t.Run("BookNotFound", func(t *testing.T) {
		mockService := new(MockReviewService)
		r := setupReviewRouter(mockService)

		mockService.On("ListReviews", mock.Anything, int64(42)).
			Return(nil, 0.0, shared.NotFound("book")).Once()

		req, _ := http.NewRequest(http.MethodGet, "/books/42/reviews", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
