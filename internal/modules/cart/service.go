package cart

import (
	"context"
	"errors"

	"bookstore/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	items CartRepositoryInterface
	books BookReader
}

func NewService(items CartRepositoryInterface, books BookReader) *Service {
	return &Service{items: items, books: books}
}

// AddItem puts a book in the user's cart. Hidden or missing books are
// rejected so a stale product page cannot feed the cart.
func (s *Service) AddItem(ctx context.Context, userID, bookID int64, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	book, err := s.books.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotAvailable
		}
		return err
	}
	if book.Status != domain.BookStatusActive {
		return ErrBookNotAvailable
	}

	return s.items.AddItem(ctx, userID, bookID, quantity)
}

func (s *Service) Summary(ctx context.Context, userID int64) (*Summary, error) {
	items, err := s.items.ItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Items: items}
	for _, it := range items {
		summary.TotalItems += it.Quantity
		summary.TotalCents += it.Subtotal()
	}
	return summary, nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, userID, itemID int64, quantity int) error {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if quantity <= 0 {
		return s.items.RemoveItem(ctx, item.ID)
	}
	return s.items.UpdateQuantity(ctx, item.ID, quantity)
}

func (s *Service) RemoveItem(ctx context.Context, userID, itemID int64) error {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	return s.items.RemoveItem(ctx, item.ID)
}

func (s *Service) Clear(ctx context.Context, userID int64) error {
	return s.items.ClearByUser(ctx, userID)
}

func (s *Service) ownedItem(ctx context.Context, userID, itemID int64) (*domain.CartItem, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.UserID != userID {
		return nil, ErrNotCartOwner
	}
	return item, nil
}
