package service

import (
	"context"
	"testing"

	"libraryhub/internal/http-api/dto"
	"libraryhub/internal/http-api/models"
	"libraryhub/internal/http-api/repository"
	"libraryhub/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- MOCK REPOSITORY ---

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) AddAndRecalculate(ctx context.Context, review *models.Review) (float64, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockReviewRepository) ListByBook(ctx context.Context, bookID int64) ([]models.Review, float64, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Review), args.Get(1).(float64), args.Error(2)
}

var _ repository.ReviewRepository = (*MockReviewRepository)(nil)

// --- TESTS ---

func TestReviewService_AddReview(t *testing.T) {
	t.Run("RatingBounds", func(t *testing.T) {
		repo := new(MockReviewRepository)
		svc := NewReviewService(repo, nil)

		for _, rating := range []int{0, -1, 6, 100} {
			_, _, err := svc.AddReview(context.Background(), 1, dto.CreateReviewDTO{UserID: 5, Rating: rating})
			require.Error(t, err, "rating %d must be rejected", rating)
			assert.True(t, shared.IsInvalidInput(err))
		}
		repo.AssertNotCalled(t, "AddAndRecalculate")
	})

	t.Run("ValidBoundaryRatings", func(t *testing.T) {
		repo := new(MockReviewRepository)
		svc := NewReviewService(repo, nil)

		repo.On("AddAndRecalculate", mock.Anything, mock.MatchedBy(func(r *models.Review) bool {
			return r.Rating == 1 && r.BookID == 1 && r.UserID == 5
		})).Return(1.0, nil).Once()
		repo.On("AddAndRecalculate", mock.Anything, mock.MatchedBy(func(r *models.Review) bool {
			return r.Rating == 5
		})).Return(3.0, nil).Once()

		_, avg, err := svc.AddReview(context.Background(), 1, dto.CreateReviewDTO{UserID: 5, Rating: 1})
		require.NoError(t, err)
		assert.Equal(t, 1.0, avg)

		_, avg, err = svc.AddReview(context.Background(), 1, dto.CreateReviewDTO{UserID: 5, Rating: 5})
		require.NoError(t, err)
		assert.Equal(t, 3.0, avg)
		repo.AssertExpectations(t)
	})

	t.Run("ReviewerNotCheckedAgainstMembership", func(t *testing.T) {
		// any user id is accepted, registered or not
		repo := new(MockReviewRepository)
		svc := NewReviewService(repo, nil)

		repo.On("AddAndRecalculate", mock.Anything, mock.MatchedBy(func(r *models.Review) bool {
			return r.UserID == 987654
		})).Return(4.0, nil).Once()

		_, _, err := svc.AddReview(context.Background(), 1, dto.CreateReviewDTO{UserID: 987654, Rating: 4})
		require.NoError(t, err)
	})

	t.Run("PropagatesBookNotFound", func(t *testing.T) {
		repo := new(MockReviewRepository)
		svc := NewReviewService(repo, nil)

		repo.On("AddAndRecalculate", mock.Anything, mock.Anything).
			Return(0.0, shared.NotFound("book")).Once()

		_, _, err := svc.AddReview(context.Background(), 42, dto.CreateReviewDTO{UserID: 5, Rating: 3})
		require.Error(t, err)
		assert.True(t, shared.IsNotFound(err))
	})
}

func TestReviewService_ListReviews(t *testing.T) {
	repo := new(MockReviewRepository)
	svc := NewReviewService(repo, nil)

	repo.On("ListByBook", mock.Anything, int64(1)).Return([]models.Review{
		{ID: 1, BookID: 1, Rating: 4},
		{ID: 2, BookID: 1, Rating: 2},
	}, 3.0, nil).Once()

	reviews, avg, err := svc.ListReviews(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
	assert.Equal(t, 3.0, avg)
}
