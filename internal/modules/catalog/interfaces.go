package catalog

import (
	"context"

	"bookstore/internal/domain"
	"bookstore/internal/repository"
)

// BookRepositoryInterface — only the methods the catalog service uses
type BookRepositoryInterface interface {
	List(ctx context.Context, f repository.BookFilters, sortExpr string, limit, offset int) ([]*domain.Book, error)
	Count(ctx context.Context, f repository.BookFilters) (int64, error)
	Genres(ctx context.Context) ([]string, error)
	Authors(ctx context.Context) ([]string, error)
	Random(ctx context.Context, n int) ([]*domain.Book, error)
	FindByID(ctx context.Context, id int64) (*domain.Book, error)
	Create(ctx context.Context, b *domain.Book) error
	Update(ctx context.Context, b *domain.Book) error
	Delete(ctx context.Context, id int64) error
}
