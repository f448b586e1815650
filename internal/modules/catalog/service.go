package catalog

import (
	"context"
	"errors"

	"bookstore/internal/domain"
	"bookstore/internal/repository"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// sortExprs whitelists ORDER BY expressions; anything else falls back to
// newest-first.
var sortExprs = map[string]string{
	"price_asc":  "price_cents ASC",
	"price_desc": "price_cents DESC",
	"newest":     "created_at DESC",
	"title_asc":  "title ASC",
}

type Service struct {
	books BookRepositoryInterface
}

func NewService(books BookRepositoryInterface) *Service {
	return &Service{books: books}
}

func (s *Service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset := (page - 1) * limit

	sortExpr, ok := sortExprs[q.Sort]
	if !ok {
		sortExpr = sortExprs["newest"]
	}

	filters := repository.BookFilters{
		Search:   q.Search,
		Genre:    q.Genre,
		Author:   q.Author,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
	}

	items, err := s.books.List(ctx, filters, sortExpr, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.books.Count(ctx, filters)
	if err != nil {
		return nil, err
	}

	return &ListResult{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	if book.Status != domain.BookStatusActive {
		return nil, ErrBookNotFound
	}
	return book, nil
}

func (s *Service) Genres(ctx context.Context) ([]string, error) {
	return s.books.Genres(ctx)
}

func (s *Service) Authors(ctx context.Context) ([]string, error) {
	return s.books.Authors(ctx)
}

func (s *Service) Random(ctx context.Context, n int) ([]*domain.Book, error) {
	if n <= 0 || n > maxPageSize {
		n = 5
	}
	return s.books.Random(ctx, n)
}

/* ---------- ADMIN ---------- */

func (s *Service) CreateBook(ctx context.Context, req CreateBookRequest) (*domain.Book, error) {
	book := &domain.Book{
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
		Status:      domain.BookStatusActive,
	}
	if err := s.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *Service) UpdateBook(ctx context.Context, id int64, req UpdateBookRequest) (*domain.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		book.Title = req.Title
	}
	if req.Author != "" {
		book.Author = req.Author
	}
	if req.Genre != "" {
		book.Genre = req.Genre
	}
	if req.Description != "" {
		book.Description = req.Description
	}
	if req.PriceCents != nil {
		book.PriceCents = *req.PriceCents
	}
	if req.ImageURL != "" {
		book.ImageURL = req.ImageURL
	}
	if req.Status != "" {
		book.Status = domain.BookStatus(req.Status)
	}

	if err := s.books.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	if _, err := s.books.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	return s.books.Delete(ctx, id)
}
