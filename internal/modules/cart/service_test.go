package cart

import (
	"context"
	"testing"

	"bookstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) AddItem(ctx context.Context, userID, bookID int64, quantity int) error {
	args := m.Called(ctx, userID, bookID, quantity)
	return args.Error(0)
}

func (m *mockCartRepo) ItemsByUser(ctx context.Context, userID int64) ([]*domain.CartItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*domain.CartItem), args.Error(1)
}

func (m *mockCartRepo) FindByID(ctx context.Context, itemID int64) (*domain.CartItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *mockCartRepo) UpdateQuantity(ctx context.Context, itemID int64, quantity int) error {
	args := m.Called(ctx, itemID, quantity)
	return args.Error(0)
}

func (m *mockCartRepo) RemoveItem(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *mockCartRepo) ClearByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
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

func TestAddItem_Success(t *testing.T) {
	items := new(mockCartRepo)
	books := new(mockBookReader)
	svc := NewService(items, books)

	books.On("FindByID", mock.Anything, int64(1)).
		Return(&domain.Book{ID: 1, Status: domain.BookStatusActive}, nil)
	items.On("AddItem", mock.Anything, int64(7), int64(1), 2).Return(nil)

	err := svc.AddItem(context.Background(), 7, 1, 2)

	require.NoError(t, err)
	items.AssertExpectations(t)
}

func TestAddItem_DefaultsQuantityToOne(t *testing.T) {
	items := new(mockCartRepo)
	books := new(mockBookReader)
	svc := NewService(items, books)

	books.On("FindByID", mock.Anything, int64(1)).
		Return(&domain.Book{ID: 1, Status: domain.BookStatusActive}, nil)
	items.On("AddItem", mock.Anything, int64(7), int64(1), 1).Return(nil)

	err := svc.AddItem(context.Background(), 7, 1, 0)

	require.NoError(t, err)
	items.AssertExpectations(t)
}

func TestAddItem_HiddenBookRejected(t *testing.T) {
	items := new(mockCartRepo)
	books := new(mockBookReader)
	svc := NewService(items, books)

	books.On("FindByID", mock.Anything, int64(2)).
		Return(&domain.Book{ID: 2, Status: domain.BookStatusHidden}, nil)

	err := svc.AddItem(context.Background(), 7, 2, 1)

	assert.ErrorIs(t, err, ErrBookNotAvailable)
	items.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAddItem_MissingBookRejected(t *testing.T) {
	items := new(mockCartRepo)
	books := new(mockBookReader)
	svc := NewService(items, books)

	books.On("FindByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.AddItem(context.Background(), 7, 99, 1)

	assert.ErrorIs(t, err, ErrBookNotAvailable)
}

func TestSummary_Totals(t *testing.T) {
	items := new(mockCartRepo)
	books := new(mockBookReader)
	svc := NewService(items, books)

	items.On("ItemsByUser", mock.Anything, int64(7)).Return([]*domain.CartItem{
		{ID: 1, Quantity: 2, Book: domain.Book{PriceCents: 1500}},
		{ID: 2, Quantity: 1, Book: domain.Book{PriceCents: 999}},
	}, nil)

	summary, err := svc.Summary(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, int64(3999), summary.TotalCents)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	items := new(mockCartRepo)
	books := new(mockBookReader)
	svc := NewService(items, books)

	items.On("FindByID", mock.Anything, int64(3)).
		Return(&domain.CartItem{ID: 3, UserID: 7}, nil)
	items.On("RemoveItem", mock.Anything, int64(3)).Return(nil)

	err := svc.UpdateQuantity(context.Background(), 7, 3, 0)

	require.NoError(t, err)
	items.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateQuantity_WrongOwner(t *testing.T) {
	items := new(mockCartRepo)
	books := new(mockBookReader)
	svc := NewService(items, books)

	items.On("FindByID", mock.Anything, int64(3)).
		Return(&domain.CartItem{ID: 3, UserID: 8}, nil)

	err := svc.UpdateQuantity(context.Background(), 7, 3, 5)

	assert.ErrorIs(t, err, ErrNotCartOwner)
}

func TestRemoveItem_NotFound(t *testing.T) {
	items := new(mockCartRepo)
	books := new(mockBookReader)
	svc := NewService(items, books)

	items.On("FindByID", mock.Anything, int64(5)).Return(nil, nil)

	err := svc.RemoveItem(context.Background(), 7, 5)

	assert.ErrorIs(t, err, ErrItemNotFound)
}
