package handler

import (
	"io"
	"log/slog"
	"net/http"

	"inador/internal/delivery/http/middleware"
	"inador/internal/delivery/http/response"
	domainerrors "inador/internal/domain/errors"
	"inador/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderStripeSignature is the webhook signature header set by Stripe.
const HeaderStripeSignature = "Stripe-Signature"

// BillingHandler holds dependencies for checkout and webhook handlers.
type BillingHandler struct {
	sessionUC usecase.SessionUsecase
	billingUC usecase.BillingUsecase
	logger    *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler, injected by Fx.
func NewBillingHandler(sessionUC usecase.SessionUsecase, billingUC usecase.BillingUsecase, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{
		sessionUC: sessionUC,
		billingUC: billingUC,
		logger:    logger,
	}
}

// CreateCheckout starts a checkout session for the verified identity.
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	ctx := c.Request().Context()
	sess := middleware.GetSession(c)

	if _, err := h.sessionUC.EnsureVerifiedIdentity(ctx, sess, middleware.GetClientProfile(c), middleware.GetCredentials(c)); err != nil {
		if errors.Is(err, usecase.ErrRedirectStarted) {
			return response.Success(c, http.StatusAccepted, redirectStartedData{Status: "redirect_started"}, "Verification redirect started")
		}

		return errors.WithStack(err)
	}

	result, err := h.billingUC.CreateCheckoutSession(ctx, sess, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Checkout session created")
}

// HandleWebhook processes a payment-completion delivery. The raw body is
// needed unmodified for signature verification.
func (h *BillingHandler) HandleWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_PAYLOAD", "Failed to read webhook payload")
	}

	signature := c.Request().Header.Get(HeaderStripeSignature)

	if err := h.billingUC.HandlePaymentCompleted(c.Request().Context(), payload, signature); err != nil {
		// An unresolvable account reference is acknowledged so the
		// processor stops redelivering an event that can never succeed.
		if errors.Is(err, domainerrors.ErrMissingIdentity) {
			h.logger.Warn("Webhook event without account reference acknowledged")

			return c.JSON(http.StatusOK, map[string]bool{"received": true})
		}

		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
