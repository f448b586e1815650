package checkout

import (
	"context"

	"bookstore/internal/domain"
)

type OrderRepositoryInterface interface {
	Create(ctx context.Context, o *domain.Order) error
	FindBySessionID(ctx context.Context, sessionID string) (*domain.Order, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

// CartReader is the slice of the cart layer checkout depends on.
type CartReader interface {
	ItemsByUser(ctx context.Context, userID int64) ([]*domain.CartItem, error)
	ClearByUser(ctx context.Context, userID int64) error
}

// PaymentProvider opens a payment session for an amount and hands back the
// session id and the URL the buyer should be sent to.
type PaymentProvider interface {
	CreateSession(ctx context.Context, amountCents int64, currency string) (sessionID, paymentURL string, err error)
}
