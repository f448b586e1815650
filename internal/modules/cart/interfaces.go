package cart

import (
	"context"

	"bookstore/internal/domain"
)

type CartRepositoryInterface interface {
	AddItem(ctx context.Context, userID, bookID int64, quantity int) error
	ItemsByUser(ctx context.Context, userID int64) ([]*domain.CartItem, error)
	FindByID(ctx context.Context, itemID int64) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, itemID int64) error
	ClearByUser(ctx context.Context, userID int64) error
}

// BookReader is the slice of the catalog repository the cart needs.
type BookReader interface {
	FindByID(ctx context.Context, id int64) (*domain.Book, error)
}
