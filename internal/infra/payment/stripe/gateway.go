// Package stripe implements the payment gateway on the Stripe API.
package stripe

import (
	"context"
	"encoding/json"
	"log/slog"

	"inador/config"
	"inador/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

type gateway struct {
	api           *client.API
	webhookSecret string
	logger        *slog.Logger
}

// NewGateway creates a PaymentGateway backed by Stripe. A missing secret key
// yields a nil gateway so the rest of the app runs with checkout disabled.
func NewGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		logger.Warn("Stripe secret key not configured, checkout disabled")

		return nil
	}

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	return &gateway{
		api:           api,
		webhookSecret: cfg.Stripe.WebhookSecret,
		logger:        logger,
	}
}

// CreateCheckoutSession creates a subscription checkout session. The uid is
// attached twice, as client_reference_id and as metadata, so the completion
// event resolves the account even if one of the channels is dropped.
func (g *gateway) CreateCheckoutSession(ctx context.Context, input *service.CheckoutSessionInput) (*service.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(input.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(input.SuccessURL),
		CancelURL:         stripe.String(input.CancelURL),
		ClientReferenceID: stripe.String(input.UID),
	}
	params.Context = ctx
	params.AddMetadata("uid", input.UID)
	params.AddMetadata("priceId", input.PriceID)

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create checkout session")
	}

	g.logger.Info("Checkout session created",
		slog.String("session_id", session.ID),
		slog.String("uid", input.UID),
	)

	return &service.CheckoutSession{
		ID:  session.ID,
		URL: session.URL,
	}, nil
}

// VerifyEvent checks the payload signature and parses the notification.
func (g *gateway) VerifyEvent(payload []byte, signature string) (*service.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, errors.Wrap(service.ErrWebhookSignature, err.Error())
	}

	paymentEvent := &service.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}

	// Only completed checkout sessions carry the fields the processor needs.
	if paymentEvent.Type == service.EventTypeCheckoutCompleted {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, errors.Wrap(err, "failed to parse checkout session payload")
		}

		paymentEvent.Metadata = session.Metadata
		paymentEvent.ClientReferenceID = session.ClientReferenceID
	}

	return paymentEvent, nil
}
