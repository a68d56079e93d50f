package handler

import (
	"net/http"

	"inador/internal/delivery/http/middleware"
	"inador/internal/delivery/http/response"
	"inador/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestHandler handles test endpoints for credit-flow validation
type TestHandler struct {
	sessionUC usecase.SessionUsecase
	creditUC  usecase.CreditUsecase
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(sessionUC usecase.SessionUsecase, creditUC usecase.CreditUsecase) *TestHandler {
	return &TestHandler{
		sessionUC: sessionUC,
		creditUC:  creditUC,
	}
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	}, "")
}

// SpendCredit debits a single credit for exercising the gate end to end.
func (h *TestHandler) SpendCredit(c echo.Context) error {
	ctx := c.Request().Context()
	sess := middleware.GetSession(c)

	if _, err := h.sessionUC.EnsureVerifiedIdentity(ctx, sess, middleware.GetClientProfile(c), middleware.GetCredentials(c)); err != nil {
		return errors.WithStack(err)
	}

	if err := h.creditUC.Debit(ctx, sess, 1); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"credits": sess.Credits}, "Credit spent")
}

type setCreditsInput struct {
	Credits int `json:"credits" validate:"gte=0"`
}

// SetCredits overwrites the balance for test setup.
func (h *TestHandler) SetCredits(c echo.Context) error {
	var input setCreditsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid credits input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	sess := middleware.GetSession(c)

	if _, err := h.sessionUC.EnsureVerifiedIdentity(ctx, sess, middleware.GetClientProfile(c), middleware.GetCredentials(c)); err != nil {
		return errors.WithStack(err)
	}

	if err := h.creditUC.SetCreditsTo(ctx, sess, input.Credits); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"credits": sess.Credits}, "Credits set")
}
