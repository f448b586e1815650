package repository

import (
	"context"
	"errors"

	"bookstore/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// AddItem inserts a cart line or bumps the quantity when the user already
// has the book in the cart ((user_id, book_id) is unique).
func (r *CartRepository) AddItem(ctx context.Context, userID, bookID int64, quantity int) error {
	item := domain.CartItem{
		UserID:   userID,
		BookID:   bookID,
		Quantity: quantity,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
		DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("quantity + ?", quantity)}),
	}).Create(&item).Error
}

func (r *CartRepository) ItemsByUser(ctx context.Context, userID int64) ([]*domain.CartItem, error) {
	var items []*domain.CartItem
	err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepository) FindByID(ctx context.Context, itemID int64) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.WithContext(ctx).Preload("Book").First(&item, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, itemID int64, quantity int) error {
	return r.db.WithContext(ctx).Model(&domain.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

func (r *CartRepository) RemoveItem(ctx context.Context, itemID int64) error {
	return r.db.WithContext(ctx).Delete(&domain.CartItem{}, itemID).Error
}

func (r *CartRepository) ClearByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&domain.CartItem{}).Error
}
