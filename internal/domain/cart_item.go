package domain

import "time"

// CartItem is one line of a user's cart. (user_id, book_id) is unique;
// adding the same book again bumps the quantity instead.
type CartItem struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"uniqueIndex:uq_cart_user_book;not null"`
	BookID    int64     `json:"book_id" gorm:"uniqueIndex:uq_cart_user_book;not null"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`

	Book Book `json:"book" gorm:"foreignKey:BookID"`
}

// Subtotal is the line total in cents.
func (ci *CartItem) Subtotal() int64 {
	return ci.Book.PriceCents * int64(ci.Quantity)
}
