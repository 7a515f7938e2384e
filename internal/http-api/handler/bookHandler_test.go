package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryhub/internal/http-api/dto"
	"libraryhub/internal/http-api/handler"
	"libraryhub/internal/http-api/models"
	"libraryhub/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) GetAll(ctx context.Context) ([]models.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookService) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookService) Create(ctx context.Context, req dto.CreateBookDTO) (*models.Book, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookService) Update(ctx context.Context, id int64, req dto.UpdateBookDTO) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockBookService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookService) SearchByTitle(ctx context.Context, title string) ([]models.Book, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookService) SuggestByGenre(ctx context.Context, genre string, minRating *float64, availableOnly bool) ([]models.Book, error) {
	args := m.Called(ctx, genre, minRating, availableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookService) SetRating(ctx context.Context, id int64, rating float64) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *MockBookService) MostBorrowed(ctx context.Context, limit int) ([]models.Book, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

// --- SETUP ---

func setupBookRouter(mockService *MockBookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewBookHandler(mockService)
	h.RegisterRoutes(r.Group("/books"))
	return r
}

// --- TESTS ---

func TestBookHandler_List(t *testing.T) {
	mockService := new(MockBookService)
	r := setupBookRouter(mockService)

	mockService.On("GetAll", mock.Anything).Return([]models.Book{
		{ID: 1, ISBN: "111", Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", Copies: 2, AvailableCopies: 2},
		{ID: 2, ISBN: "222", Title: "Emma", Author: "Jane Austen", Genre: "Classic", Copies: 1, AvailableCopies: 0, Rating: 4.5},
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/books", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.BookResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Dune", resp[0].Title)
	assert.Equal(t, 4.5, resp[1].Rating)
}

func TestBookHandler_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		mockService.On("GetByID", mock.Anything, int64(1)).Return(&models.Book{
			ID: 1, ISBN: "111", Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi",
			Copies: 2, AvailableCopies: 1, Rating: 4.25, BorrowedCount: 3,
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/books/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.BookResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, 1, resp.AvailableCopies)
		assert.Equal(t, 3, resp.BorrowedCount)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		mockService.On("GetByID", mock.Anything, int64(42)).
			Return(nil, shared.NotFound("book")).Once()

		req, _ := http.NewRequest(http.MethodGet, "/books/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "book not found")
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		req, _ := http.NewRequest(http.MethodGet, "/books/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		copies := 2
		mockService.On("Create", mock.Anything, dto.CreateBookDTO{
			ISBN: "111", Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", Copies: &copies,
		}).Return(&models.Book{
			ID: 1, ISBN: "111", Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi",
			Copies: 2, AvailableCopies: 2,
		}, nil).Once()

		body, _ := json.Marshal(map[string]interface{}{
			"isbn": "111", "title": "Dune", "author": "Frank Herbert", "genre": "Sci-Fi", "copies": 2,
		})
		req, _ := http.NewRequest(http.MethodPost, "/books", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Book added successfully!")
		mockService.AssertExpectations(t)
	})

	t.Run("DuplicateISBN", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		mockService.On("Create", mock.Anything, mock.Anything).
			Return(nil, shared.Conflict("a book with this ISBN already exists")).Once()

		body, _ := json.Marshal(map[string]interface{}{
			"isbn": "111", "title": "Dune", "author": "Frank Herbert", "genre": "Sci-Fi", "copies": 2,
		})
		req, _ := http.NewRequest(http.MethodPost, "/books", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("MissingFields", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		req, _ := http.NewRequest(http.MethodPost, "/books", bytes.NewReader([]byte(`{"title": "Dune"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestBookHandler_Update(t *testing.T) {
	t.Run("PartialFields", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		mockService.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(req dto.UpdateBookDTO) bool {
			return req.Title != nil && *req.Title == "Dune Messiah" && req.ISBN == nil
		})).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodPut, "/books/1", bytes.NewReader([]byte(`{"title": "Dune Messiah"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Book updated successfully!")
		mockService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		mockService.On("Update", mock.Anything, int64(42), mock.Anything).
			Return(shared.NotFound("book")).Once()

		req, _ := http.NewRequest(http.MethodPut, "/books/42", bytes.NewReader([]byte(`{"title": "x"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		mockService.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/books/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Book removed successfully")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		mockService.On("Delete", mock.Anything, int64(42)).
			Return(shared.NotFound("book")).Once()

		req, _ := http.NewRequest(http.MethodDelete, "/books/42", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandler_SearchByTitle(t *testing.T) {
	t.Run("Matches", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		mockService.On("SearchByTitle", mock.Anything, "dune").Return([]models.Book{
			{ID: 1, Title: "Dune"},
		}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/books/search?title=dune", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []dto.BookResponse
		json.Unmarshal(w.Body.Bytes(), &resp)
		assert.Len(t, resp, 1)
	})

	t.Run("EmptyResultIsNotAnError", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		mockService.On("SearchByTitle", mock.Anything, "nothing").Return([]models.Book{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/books/search?title=nothing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("MissingTitleParam", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		req, _ := http.NewRequest(http.MethodGet, "/books/search", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "SearchByTitle")
	})
}

func TestBookHandler_SuggestByGenre(t *testing.T) {
	t.Run("AllFilters", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		mockService.On("SuggestByGenre", mock.Anything, "sci", mock.MatchedBy(func(min *float64) bool {
			return min != nil && *min == 4.0
		}), true).Return([]models.Book{{ID: 1, Title: "Dune", Rating: 4.5, AvailableCopies: 1}}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/books/suggest?genre=sci&min_rating=4.0&available_only=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("GenreOnly", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		mockService.On("SuggestByGenre", mock.Anything, "classic", (*float64)(nil), false).
			Return([]models.Book{}, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/books/suggest?genre=classic", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingGenreParam", func(t *testing.T) {
		mockService := new(MockBookService)
		r := setupBookRouter(mockService)

		req, _ := http.NewRequest(http.MethodGet, "/books/suggest", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookHandler_SetRating(t *testing.T) {
	mockService := new(MockBookService)
	r := setupBookRouter(mockService)

	mockService.On("SetRating", mock.Anything, int64(1), 3.7).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodPut, "/books/1/rating", bytes.NewReader([]byte(`{"rating": 3.7}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rating updated!")
	mockService.AssertExpectations(t)
}

func TestBookHandler_MostBorrowed(t *testing.T) {
	mockService := new(MockBookService)
	r := setupBookRouter(mockService)

	mockService.On("MostBorrowed", mock.Anything, 3).Return([]models.Book{
		{ID: 2, Title: "Emma", BorrowedCount: 9},
		{ID: 1, Title: "Dune", BorrowedCount: 4},
	}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/books/popular?limit=3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.BookResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Emma", resp[0].Title)
}
