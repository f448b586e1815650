package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a checkout result, keyed by the payment provider's session id
// so webhook delivery stays idempotent.
type Order struct {
	ID          int64       `json:"id" gorm:"primaryKey"`
	UserID      int64       `json:"user_id" gorm:"index"`
	SessionID   string      `json:"session_id" gorm:"size:128;uniqueIndex;not null"`
	AmountCents int64       `json:"amount_cents" gorm:"not null"`
	Currency    string      `json:"currency" gorm:"size:10;not null;default:usd"`
	Status      OrderStatus `json:"status" gorm:"size:50;not null;default:pending"`
	CreatedAt   time.Time   `json:"created_at"`

	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID             int64  `json:"id" gorm:"primaryKey"`
	OrderID        int64  `json:"order_id" gorm:"index;not null"`
	BookID         int64  `json:"book_id"`
	Title          string `json:"title" gorm:"size:255;not null"`
	UnitPriceCents int64  `json:"unit_price_cents" gorm:"not null"`
	Quantity       int    `json:"quantity" gorm:"not null;default:1"`
}

func (oi *OrderItem) Subtotal() int64 {
	return oi.UnitPriceCents * int64(oi.Quantity)
}

func (o *Order) TotalQuantity() int {
	total := 0
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}
