package catalog

import (
	"context"
	"testing"

	"bookstore/internal/domain"
	"bookstore/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockBookRepo struct {
	mock.Mock
}

func (m *mockBookRepo) List(ctx context.Context, f repository.BookFilters, sortExpr string, limit, offset int) ([]*domain.Book, error) {
	args := m.Called(ctx, f, sortExpr, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Book), args.Error(1)
}

func (m *mockBookRepo) Count(ctx context.Context, f repository.BookFilters) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookRepo) Genres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockBookRepo) Authors(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockBookRepo) Random(ctx context.Context, n int) ([]*domain.Book, error) {
	args := m.Called(ctx, n)
	return args.Get(0).([]*domain.Book), args.Error(1)
}

func (m *mockBookRepo) FindByID(ctx context.Context, id int64) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *mockBookRepo) Create(ctx context.Context, b *domain.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookRepo) Update(ctx context.Context, b *domain.Book) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestList_NormalizesPaging(t *testing.T) {
	repo := new(mockBookRepo)
	svc := NewService(repo)

	repo.On("List", mock.Anything, mock.Anything, "created_at DESC", defaultPageSize, 0).
		Return([]*domain.Book{{ID: 1, Title: "Dune"}}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	result, err := svc.List(context.Background(), ListQuery{Page: -3, Limit: 0, Sort: "bogus"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, defaultPageSize, result.Limit)
	assert.Equal(t, int64(1), result.Total)
	repo.AssertExpectations(t)
}

func TestList_SortWhitelist(t *testing.T) {
	repo := new(mockBookRepo)
	svc := NewService(repo)

	repo.On("List", mock.Anything, mock.Anything, "price_cents ASC", 20, 20).
		Return([]*domain.Book{}, nil)
	repo.On("Count", mock.Anything, mock.Anything).Return(int64(0), nil)

	_, err := svc.List(context.Background(), ListQuery{Page: 2, Limit: 20, Sort: "price_asc"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestGetByID_HiddenBookLooksMissing(t *testing.T) {
	repo := new(mockBookRepo)
	svc := NewService(repo)

	repo.On("FindByID", mock.Anything, int64(5)).
		Return(&domain.Book{ID: 5, Status: domain.BookStatusHidden}, nil)

	_, err := svc.GetByID(context.Background(), 5)

	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(mockBookRepo)
	svc := NewService(repo)

	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestUpdateBook_PartialFields(t *testing.T) {
	repo := new(mockBookRepo)
	svc := NewService(repo)

	existing := &domain.Book{ID: 3, Title: "Old", Author: "A", PriceCents: 1000, Status: domain.BookStatusActive}
	repo.On("FindByID", mock.Anything, int64(3)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	newPrice := int64(1500)
	book, err := svc.UpdateBook(context.Background(), 3, UpdateBookRequest{PriceCents: &newPrice})

	require.NoError(t, err)
	assert.Equal(t, "Old", book.Title)
	assert.Equal(t, int64(1500), book.PriceCents)
}

func TestDeleteBook_NotFound(t *testing.T) {
	repo := new(mockBookRepo)
	svc := NewService(repo)

	repo.On("FindByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.DeleteBook(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
