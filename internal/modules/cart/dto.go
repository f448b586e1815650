package cart

import "bookstore/internal/domain"

type AddItemRequest struct {
	Quantity int `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type Summary struct {
	Items      []*domain.CartItem `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalCents int64              `json:"total_cents"`
}
