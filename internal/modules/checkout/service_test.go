package checkout

import (
	"context"
	"testing"

	"bookstore/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOrderRepo) FindBySessionID(ctx context.Context, sessionID string) (*domain.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *mockOrderRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockCartReader struct {
	mock.Mock
}

func (m *mockCartReader) ItemsByUser(ctx context.Context, userID int64) ([]*domain.CartItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*domain.CartItem), args.Error(1)
}

func (m *mockCartReader) ClearByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newCheckoutService(t *testing.T) (*Service, *mockOrderRepo, *mockCartReader) {
	t.Helper()
	orders := new(mockOrderRepo)
	cart := new(mockCartReader)
	return NewService(orders, cart, NewTestProvider(""), "usd"), orders, cart
}

func TestCheckout_SnapshotsCart(t *testing.T) {
	svc, orders, cart := newCheckoutService(t)

	cart.On("ItemsByUser", mock.Anything, int64(7)).Return([]*domain.CartItem{
		{BookID: 1, Quantity: 2, Book: domain.Book{ID: 1, Title: "Dune", PriceCents: 1500}},
		{BookID: 2, Quantity: 1, Book: domain.Book{ID: 2, Title: "Hyperion", PriceCents: 999}},
	}, nil)
	orders.On("Create", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Checkout(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.Equal(t, int64(3999), result.Order.AmountCents)
	assert.Equal(t, domain.OrderStatusPending, result.Order.Status)
	assert.NotEmpty(t, result.Order.SessionID)
	assert.Contains(t, result.PaymentURL, result.Order.SessionID)

	require.Len(t, result.Order.Items, 2)
	assert.Equal(t, "Dune", result.Order.Items[0].Title)
	assert.Equal(t, int64(1500), result.Order.Items[0].UnitPriceCents)
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, orders, cart := newCheckoutService(t)

	cart.On("ItemsByUser", mock.Anything, int64(7)).Return([]*domain.CartItem{}, nil)

	_, err := svc.Checkout(context.Background(), 7)

	assert.ErrorIs(t, err, ErrEmptyCart)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandlePaymentSucceeded_MarksPaidAndClearsCart(t *testing.T) {
	svc, orders, cart := newCheckoutService(t)

	orders.On("FindBySessionID", mock.Anything, "cs_1").
		Return(&domain.Order{ID: 10, UserID: 7, Status: domain.OrderStatusPending}, nil)
	orders.On("UpdateStatus", mock.Anything, int64(10), domain.OrderStatusPaid).Return(nil)
	cart.On("ClearByUser", mock.Anything, int64(7)).Return(nil)

	err := svc.HandlePaymentSucceeded(context.Background(), "cs_1")

	require.NoError(t, err)
	orders.AssertExpectations(t)
	cart.AssertExpectations(t)
}

func TestHandlePaymentSucceeded_RepeatDeliveryIsNoop(t *testing.T) {
	svc, orders, cart := newCheckoutService(t)

	orders.On("FindBySessionID", mock.Anything, "cs_1").
		Return(&domain.Order{ID: 10, UserID: 7, Status: domain.OrderStatusPaid}, nil)

	err := svc.HandlePaymentSucceeded(context.Background(), "cs_1")

	require.NoError(t, err)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	cart.AssertNotCalled(t, "ClearByUser", mock.Anything, mock.Anything)
}

func TestHandlePaymentSucceeded_UnknownSession(t *testing.T) {
	svc, orders, _ := newCheckoutService(t)

	orders.On("FindBySessionID", mock.Anything, "cs_missing").Return(nil, nil)

	err := svc.HandlePaymentSucceeded(context.Background(), "cs_missing")

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestHandlePaymentCancelled_PaidOrderStaysPaid(t *testing.T) {
	svc, orders, _ := newCheckoutService(t)

	orders.On("FindBySessionID", mock.Anything, "cs_1").
		Return(&domain.Order{ID: 10, Status: domain.OrderStatusPaid}, nil)

	err := svc.HandlePaymentCancelled(context.Background(), "cs_1")

	require.NoError(t, err)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetOrder_WrongOwner(t *testing.T) {
	svc, orders, _ := newCheckoutService(t)

	orders.On("FindByID", mock.Anything, int64(10)).
		Return(&domain.Order{ID: 10, UserID: 8}, nil)

	_, err := svc.GetOrder(context.Background(), 7, 10)

	assert.ErrorIs(t, err, ErrNotOrderOwner)
}
