package catalog

import "bookstore/internal/domain"

type ListQuery struct {
	Search   string `form:"search"`
	Genre    string `form:"genre"`
	Author   string `form:"author"`
	MinPrice int64  `form:"min_price"`
	MaxPrice int64  `form:"max_price"`
	Sort     string `form:"sort"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type ListResult struct {
	Items []*domain.Book `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type CreateBookRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"required,min=0"`
	ImageURL    string `json:"image_url"`
}

type UpdateBookRequest struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	PriceCents  *int64 `json:"price_cents"`
	ImageURL    string `json:"image_url"`
	Status      string `json:"status"`
}
