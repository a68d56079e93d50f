package handler

import (
	"log/slog"
	"net/http"

	"inador/internal/delivery/http/middleware"
	"inador/internal/delivery/http/response"
	"inador/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GenerationHandler holds dependencies for site-generation handlers.
type GenerationHandler struct {
	sessionUC    usecase.SessionUsecase
	generationUC usecase.GenerationUsecase
	creditUC     usecase.CreditUsecase
	logger       *slog.Logger
}

// NewGenerationHandler is the constructor for GenerationHandler, injected by Fx.
func NewGenerationHandler(
	sessionUC usecase.SessionUsecase,
	generationUC usecase.GenerationUsecase,
	creditUC usecase.CreditUsecase,
	logger *slog.Logger,
) *GenerationHandler {
	return &GenerationHandler{
		sessionUC:    sessionUC,
		generationUC: generationUC,
		creditUC:     creditUC,
		logger:       logger,
	}
}

// redirectStartedData is returned when a constrained client must complete
// verification through a full-page redirect before retrying the operation.
type redirectStartedData struct {
	Status string `json:"status"`
}

// RequestSiteGeneration handles the credit-gated site request.
func (h *GenerationHandler) RequestSiteGeneration(c echo.Context) error {
	var input *usecase.SiteRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid site request input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	sess := middleware.GetSession(c)

	if _, err := h.sessionUC.EnsureVerifiedIdentity(ctx, sess, middleware.GetClientProfile(c), middleware.GetCredentials(c)); err != nil {
		if errors.Is(err, usecase.ErrRedirectStarted) {
			return response.Success(c, http.StatusAccepted, redirectStartedData{Status: "redirect_started"}, "Verification redirect started")
		}

		return errors.WithStack(err)
	}

	requestID, err := h.generationUC.RequestSiteGeneration(ctx, sess, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, map[string]any{
		"requestId": requestID,
		"credits":   sess.Credits,
	}, "Site request submitted")
}

// SubmitStarterForm handles the starter contact form.
func (h *GenerationHandler) SubmitStarterForm(c echo.Context) error {
	var input *usecase.StarterFormInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid starter form input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	sess := middleware.GetSession(c)

	if _, err := h.sessionUC.EnsureVerifiedIdentity(ctx, sess, middleware.GetClientProfile(c), middleware.GetCredentials(c)); err != nil {
		if errors.Is(err, usecase.ErrRedirectStarted) {
			return response.Success(c, http.StatusAccepted, redirectStartedData{Status: "redirect_started"}, "Verification redirect started")
		}

		return errors.WithStack(err)
	}

	if err := h.generationUC.SubmitStarterForm(ctx, sess, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"starterCreditsAvailable": sess.StarterCreditsAvailable,
	}, "Starter form submitted")
}

// ClaimStarterCredits applies the one-time starter bonus.
func (h *GenerationHandler) ClaimStarterCredits(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.GetSession(c)

	if _, err := h.sessionUC.EnsureVerifiedIdentity(ctx, sess, middleware.GetClientProfile(c), middleware.GetCredentials(c)); err != nil {
		if errors.Is(err, usecase.ErrRedirectStarted) {
			return response.Success(c, http.StatusAccepted, redirectStartedData{Status: "redirect_started"}, "Verification redirect started")
		}

		return errors.WithStack(err)
	}

	claim, err := h.creditUC.ClaimStarterCredits(ctx, sess)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"granted":     claim.Credits,
		"credits":     sess.Credits,
		"checkoutUrl": claim.CheckoutURL,
		"qrCode":      claim.QRCodeBase64,
	}, "Starter credits claimed")
}
