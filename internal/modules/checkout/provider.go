package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// TestProvider is the built-in payment backend for development and tests.
// It issues a unique session id and a fake hosted-checkout URL; payment
// completion arrives through the webhook endpoint like with a real provider.
type TestProvider struct {
	BaseURL string
}

func NewTestProvider(baseURL string) *TestProvider {
	if baseURL == "" {
		baseURL = "https://pay.example.test"
	}
	return &TestProvider{BaseURL: baseURL}
}

func (p *TestProvider) CreateSession(_ context.Context, amountCents int64, currency string) (string, string, error) {
	sessionID := "cs_test_" + uuid.NewString()
	url := fmt.Sprintf("%s/checkout/%s?amount=%d&currency=%s", p.BaseURL, sessionID, amountCents, currency)
	return sessionID, url, nil
}
