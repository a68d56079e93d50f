package usecase

import (
	"context"

	"inador/internal/domain/entity"
)

// CheckoutInput identifies the product to start a checkout for.
type CheckoutInput struct {
	PriceID string `json:"priceId"`
}

// CheckoutResult carries the redirect URL of the created checkout session
// and an inline QR render for handing the URL to a constrained client.
type CheckoutResult struct {
	SessionID    string `json:"sessionId"`
	URL          string `json:"url"`
	QRCodeBase64 string `json:"qrCode,omitempty"`
}

// BillingUsecase covers checkout creation and payment-completion processing.
type BillingUsecase interface {
	// CreateCheckoutSession starts a checkout for the session's verified
	// identity. Fails with AuthRequired before any gateway call when the
	// caller is not authenticated, NotConfigured when the processor secret
	// is absent, MissingProduct without a price id.
	CreateCheckoutSession(ctx context.Context, sess *entity.Session, input *CheckoutInput) (*CheckoutResult, error)

	// HandlePaymentCompleted verifies and processes a payment webhook
	// delivery. The credit grant is idempotent per event id; redelivery of
	// a processed event is a no-op.
	HandlePaymentCompleted(ctx context.Context, payload []byte, signature string) error
}
