package repository

import (
	"context"

	"bookstore/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert records a user's rating for a book, overwriting any previous one.
func (r *RatingRepository) Upsert(ctx context.Context, rating *domain.Rating) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "book_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating"}),
	}).Create(rating).Error
}

// Summary returns the average rating and vote count for a book.
func (r *RatingRepository) Summary(ctx context.Context, bookID int64) (avg float64, count int64, err error) {
	type row struct {
		Avg   float64
		Count int64
	}
	var out row
	err = r.db.WithContext(ctx).Model(&domain.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("book_id = ?", bookID).
		Scan(&out).Error
	if err != nil {
		return 0, 0, err
	}
	return out.Avg, out.Count, nil
}
