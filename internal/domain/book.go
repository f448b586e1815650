package domain

import "time"

type BookStatus string

const (
	BookStatusActive BookStatus = "active"
	BookStatusHidden BookStatus = "hidden"
)

// Book is a catalog entry. Prices are stored in cents to avoid float
// arithmetic anywhere near money.
type Book struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title" validate:"required,max=255"`
	Author      string     `json:"author,omitempty"`
	Genre       string     `json:"genre,omitempty"`
	Description string     `json:"description,omitempty"`
	PriceCents  int64      `json:"price_cents"`
	ImageURL    string     `json:"image_url,omitempty"`
	Status      BookStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
