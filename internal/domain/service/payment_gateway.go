package service

import (
	"context"
	"errors"
)

// ErrWebhookSignature is returned when the webhook payload does not match
// its signature header. Such payloads are rejected without processing.
var ErrWebhookSignature = errors.New("webhook signature verification failed")

// CheckoutSessionInput describes a checkout session to create. The caller's
// uid is attached both as the direct reference and in metadata, so the
// completion event can resolve the account even if one of them is dropped.
type CheckoutSessionInput struct {
	PriceID    string
	UID        string
	SuccessURL string
	CancelURL  string
}

// CheckoutSession is the created payment-processor session.
type CheckoutSession struct {
	ID  string
	URL string // Redirect URL the client navigates to.
}

// PaymentEvent is a verified payment-completion notification. Identity
// resolution from Metadata/ClientReferenceID is business logic and stays in
// the use case layer.
type PaymentEvent struct {
	ID                string
	Type              string
	Metadata          map[string]string
	ClientReferenceID string
}

// EventTypeCheckoutCompleted is the only event type the processor consumes.
const EventTypeCheckoutCompleted = "checkout.session.completed"

// PaymentGateway abstracts the payment processor.
type PaymentGateway interface {
	// CreateCheckoutSession creates a checkout session and returns its redirect URL.
	CreateCheckoutSession(ctx context.Context, input *CheckoutSessionInput) (*CheckoutSession, error)

	// VerifyEvent checks the payload signature and parses the notification.
	// A mismatch fails with ErrWebhookSignature.
	VerifyEvent(payload []byte, signature string) (*PaymentEvent, error)
}
