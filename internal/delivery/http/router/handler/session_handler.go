// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"inador/internal/delivery/http/middleware"
	"inador/internal/delivery/http/response"
	"inador/internal/domain/entity"
	"inador/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:     uc,
		logger: logger,
	}
}

// sessionView is the client-facing snapshot of a session.
type sessionView struct {
	SessionID               string                `json:"sessionId"`
	State                   entity.SessionState   `json:"state"`
	UID                     string                `json:"uid,omitempty"`
	Email                   string                `json:"email,omitempty"`
	DisplayName             string                `json:"displayName,omitempty"`
	Credits                 int                   `json:"credits"`
	StarterCreditsAvailable bool                  `json:"starterCreditsAvailable"`
	PendingAction           *entity.PendingAction `json:"pendingAction,omitempty"`
}

func newSessionView(sess *entity.Session, pendingAction *entity.PendingAction) sessionView {
	view := sessionView{
		SessionID:               sess.ID,
		State:                   sess.State,
		Credits:                 sess.Credits,
		StarterCreditsAvailable: sess.StarterCreditsAvailable,
		PendingAction:           pendingAction,
	}
	if sess.Identity != nil {
		view.UID = sess.Identity.UID
		view.Email = sess.Identity.Email
		view.DisplayName = sess.Identity.DisplayName
	}

	return view
}

// Bootstrap handles session startup: it resolves a pending redirect result,
// evaluates the supplied credentials once and returns the session snapshot
// together with any pending action to replay.
func (h *SessionHandler) Bootstrap(c echo.Context) error {
	sess := middleware.GetSession(c)

	result, err := h.uc.Bootstrap(c.Request().Context(), sess, middleware.GetClientProfile(c), middleware.GetCredentials(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionView(result.Session, result.PendingAction), "Session ready")
}

type pendingActionInput struct {
	Kind      entity.PendingActionKind `json:"kind" validate:"required"`
	Target    string                   `json:"target" validate:"required"`
	Overwrite bool                     `json:"overwrite"`
}

// RecordPendingAction queues the single action to replay after verification.
func (h *SessionHandler) RecordPendingAction(c echo.Context) error {
	var input pendingActionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pending action input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	sess := middleware.GetSession(c)
	action := &entity.PendingAction{Kind: input.Kind, Target: input.Target}
	if err := h.uc.RecordPendingAction(c.Request().Context(), sess.ID, action, input.Overwrite); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Pending action recorded")
}

// SignOut clears the session; the remote account record persists.
func (h *SessionHandler) SignOut(c echo.Context) error {
	sess := middleware.GetSession(c)

	creds := middleware.GetCredentials(c)
	if creds.IDToken != "" {
		// Resolve the identity so provider-side revocation can target it.
		if _, err := h.uc.Bootstrap(c.Request().Context(), sess, middleware.GetClientProfile(c), creds); err != nil {
			h.logger.Debug("Bootstrap before sign-out failed", slog.Any("error", err))
		}
	}

	if err := h.uc.SignOut(c.Request().Context(), sess); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionView(sess, nil), "Signed out")
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
