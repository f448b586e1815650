package checkout

import "bookstore/internal/domain"

type CheckoutResult struct {
	Order      *domain.Order `json:"order"`
	PaymentURL string        `json:"payment_url"`
}

// WebhookEvent is the payload payment providers POST back to us.
type WebhookEvent struct {
	Type      string `json:"type" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}

const (
	EventPaymentSucceeded = "payment.succeeded"
	EventPaymentCancelled = "payment.cancelled"
)
