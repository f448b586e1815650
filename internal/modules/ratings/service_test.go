package ratings

import (
	"context"
	"testing"

	"bookstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRatingRepo struct {
	mock.Mock
}

func (m *mockRatingRepo) Upsert(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *mockRatingRepo) Summary(ctx context.Context, bookID int64) (float64, int64, error) {
	args := m.Called(ctx, bookID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

type mockBookReader struct {
	mock.Mock
}

func (m *mockBookReader) FindByID(ctx context.Context, id int64) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func TestRate_Success(t *testing.T) {
	ratings := new(mockRatingRepo)
	books := new(mockBookReader)
	svc := NewService(ratings, books)

	books.On("FindByID", mock.Anything, int64(1)).Return(&domain.Book{ID: 1}, nil)
	ratings.On("Upsert", mock.Anything, mock.MatchedBy(func(r *domain.Rating) bool {
		return r.BookID == 1 && r.UserID == 7 && r.Rating == 4
	})).Return(nil)

	err := svc.Rate(context.Background(), 7, 1, 4)

	require.NoError(t, err)
	ratings.AssertExpectations(t)
}

func TestRate_OutOfRange(t *testing.T) {
	ratings := new(mockRatingRepo)
	books := new(mockBookReader)
	svc := NewService(ratings, books)

	for _, bad := range []int{0, -1, 6, 100} {
		err := svc.Rate(context.Background(), 7, 1, bad)
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
	books.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestRate_UnknownBook(t *testing.T) {
	ratings := new(mockRatingRepo)
	books := new(mockBookReader)
	svc := NewService(ratings, books)

	books.On("FindByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Rate(context.Background(), 7, 99, 3)

	assert.ErrorIs(t, err, ErrBookNotFound)
	ratings.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSummary_RoundsToOneDecimal(t *testing.T) {
	ratings := new(mockRatingRepo)
	books := new(mockBookReader)
	svc := NewService(ratings, books)

	ratings.On("Summary", mock.Anything, int64(1)).Return(4.3333333, int64(3), nil)

	summary, err := svc.Summary(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, 4.3, summary.Average)
	assert.Equal(t, int64(3), summary.Count)
}
