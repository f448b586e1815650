package ratings

import (
	"context"

	"bookstore/internal/domain"
)

type RatingRepositoryInterface interface {
	Upsert(ctx context.Context, rating *domain.Rating) error
	Summary(ctx context.Context, bookID int64) (avg float64, count int64, err error)
}

type BookReader interface {
	FindByID(ctx context.Context, id int64) (*domain.Book, error)
}
