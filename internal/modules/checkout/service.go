package checkout

import (
	"context"
	"log"

	"bookstore/internal/domain"
)

type Service struct {
	orders   OrderRepositoryInterface
	cart     CartReader
	provider PaymentProvider
	currency string
}

func NewService(orders OrderRepositoryInterface, cart CartReader, provider PaymentProvider, currency string) *Service {
	if currency == "" {
		currency = "usd"
	}
	return &Service{orders: orders, cart: cart, provider: provider, currency: currency}
}

// Checkout snapshots the user's cart into an order and opens a payment
// session. Line items copy title and price at checkout time so later catalog
// edits don't change what the buyer agreed to pay.
func (s *Service) Checkout(ctx context.Context, userID int64) (*CheckoutResult, error) {
	items, err := s.cart.ItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64
	orderItems := make([]domain.OrderItem, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, domain.OrderItem{
			BookID:         it.BookID,
			Title:          it.Book.Title,
			UnitPriceCents: it.Book.PriceCents,
			Quantity:       it.Quantity,
		})
		total += it.Subtotal()
	}

	sessionID, paymentURL, err := s.provider.CreateSession(ctx, total, s.currency)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:      userID,
		SessionID:   sessionID,
		AmountCents: total,
		Currency:    s.currency,
		Status:      domain.OrderStatusPending,
		Items:       orderItems,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	return &CheckoutResult{Order: order, PaymentURL: paymentURL}, nil
}

// HandlePaymentSucceeded marks the order paid and empties the buyer's cart.
// Webhooks can be delivered more than once; a repeat for an already-paid
// order is a no-op.
func (s *Service) HandlePaymentSucceeded(ctx context.Context, sessionID string) error {
	order, err := s.orders.FindBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.Status == domain.OrderStatusPaid {
		return nil
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, domain.OrderStatusPaid); err != nil {
		return err
	}

	// The order is already paid; a cart that sticks around is annoying but
	// not worth failing the webhook over.
	if err := s.cart.ClearByUser(ctx, order.UserID); err != nil {
		log.Printf("checkout: failed to clear cart for user %d: %v", order.UserID, err)
	}
	return nil
}

// HandlePaymentCancelled cancels a pending order. Paid orders stay paid.
func (s *Service) HandlePaymentCancelled(ctx context.Context, sessionID string) error {
	order, err := s.orders.FindBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.Status != domain.OrderStatusPending {
		return nil
	}
	return s.orders.UpdateStatus(ctx, order.ID, domain.OrderStatusCancelled)
}

func (s *Service) ListOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *Service) GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrNotOrderOwner
	}
	return order, nil
}
