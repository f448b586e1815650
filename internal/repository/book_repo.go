package repository

import (
	"context"
	"time"

	"bookstore/internal/domain"

	"gorm.io/gorm"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// BookFilters narrows the catalog listing. Zero values mean "no filter".
type BookFilters struct {
	Search   string
	Genre    string
	Author   string
	MinPrice int64
	MaxPrice int64
}

type bookModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title;size:255;not null"`
	Author      string    `gorm:"column:author;size:255;index"`
	Genre       string    `gorm:"column:genre;size:255;index"`
	Description string    `gorm:"column:description"`
	PriceCents  int64     `gorm:"column:price_cents;index;not null;default:0"`
	ImageURL    string    `gorm:"column:image_url;size:1024"`
	Status      string    `gorm:"column:status;size:100;not null;default:active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (bookModel) TableName() string { return "books" }

func toDomainBook(m bookModel) *domain.Book {
	return &domain.Book{
		ID:          m.ID,
		Title:       m.Title,
		Author:      m.Author,
		Genre:       m.Genre,
		Description: m.Description,
		PriceCents:  m.PriceCents,
		ImageURL:    m.ImageURL,
		Status:      domain.BookStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toBookModel(b *domain.Book) bookModel {
	return bookModel{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Genre:       b.Genre,
		Description: b.Description,
		PriceCents:  b.PriceCents,
		ImageURL:    b.ImageURL,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BookRepository) applyFilters(q *gorm.DB, f BookFilters) *gorm.DB {
	q = q.Where("status = ?", string(domain.BookStatusActive))
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR author LIKE ?", like, like)
	}
	if f.Genre != "" {
		q = q.Where("genre = ?", f.Genre)
	}
	if f.Author != "" {
		q = q.Where("author = ?", f.Author)
	}
	if f.MinPrice > 0 {
		q = q.Where("price_cents >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("price_cents <= ?", f.MaxPrice)
	}
	return q
}

// List returns a catalog page. sortExpr must come from the service's
// whitelist; it is passed straight to ORDER BY.
func (r *BookRepository) List(ctx context.Context, f BookFilters, sortExpr string, limit, offset int) ([]*domain.Book, error) {
	var models []bookModel
	q := r.applyFilters(r.db.WithContext(ctx).Model(&bookModel{}), f)
	if sortExpr != "" {
		q = q.Order(sortExpr)
	}
	if err := q.Limit(limit).Offset(offset).Find(&models).Error; err != nil {
		return nil, err
	}

	books := make([]*domain.Book, 0, len(models))
	for _, m := range models {
		books = append(books, toDomainBook(m))
	}
	return books, nil
}

func (r *BookRepository) Count(ctx context.Context, f BookFilters) (int64, error) {
	var total int64
	q := r.applyFilters(r.db.WithContext(ctx).Model(&bookModel{}), f)
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *BookRepository) Genres(ctx context.Context) ([]string, error) {
	var genres []string
	err := r.db.WithContext(ctx).Model(&bookModel{}).
		Where("status = ? AND genre <> ''", string(domain.BookStatusActive)).
		Distinct("genre").
		Order("genre").
		Pluck("genre", &genres).Error
	return genres, err
}

func (r *BookRepository) Authors(ctx context.Context) ([]string, error) {
	var authors []string
	err := r.db.WithContext(ctx).Model(&bookModel{}).
		Where("status = ? AND author <> ''", string(domain.BookStatusActive)).
		Distinct("author").
		Order("author").
		Pluck("author", &authors).Error
	return authors, err
}

func (r *BookRepository) Random(ctx context.Context, n int) ([]*domain.Book, error) {
	var models []bookModel
	err := r.db.WithContext(ctx).Model(&bookModel{}).
		Where("status = ?", string(domain.BookStatusActive)).
		Order("RANDOM()").
		Limit(n).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	books := make([]*domain.Book, 0, len(models))
	for _, m := range models {
		books = append(books, toDomainBook(m))
	}
	return books, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id int64) (*domain.Book, error) {
	var m bookModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainBook(m), nil
}

func (r *BookRepository) Create(ctx context.Context, b *domain.Book) error {
	m := toBookModel(b)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*b = *toDomainBook(m)
	return nil
}

func (r *BookRepository) Update(ctx context.Context, b *domain.Book) error {
	m := toBookModel(b)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&bookModel{}, id).Error
}
