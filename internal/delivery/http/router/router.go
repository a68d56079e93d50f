// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inador/config"
	"inador/internal/delivery/http/middleware"
	"inador/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	GenerationHandler *handler.GenerationHandler
	BillingHandler    *handler.BillingHandler
	TestHandler       *handler.TestHandler
	SessionMiddleware *middleware.SessionMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	generationHandler *handler.GenerationHandler
	billingHandler    *handler.BillingHandler
	testHandler       *handler.TestHandler
	sessionMiddleware *middleware.SessionMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		generationHandler: params.GenerationHandler,
		billingHandler:    params.BillingHandler,
		testHandler:       params.TestHandler,
		sessionMiddleware: params.SessionMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Webhook deliveries carry no session; signature verification gates them.
	e.POST("/webhooks/stripe", r.billingHandler.HandleWebhook)

	// Session lifecycle routes
	sessionGroup := e.Group("/session")
	sessionGroup.Use(r.sessionMiddleware.Process)
	{
		sessionGroup.POST("/bootstrap", r.sessionHandler.Bootstrap)
		sessionGroup.POST("/pending-action", r.sessionHandler.RecordPendingAction)
		sessionGroup.POST("/sign-out", r.sessionHandler.SignOut)
	}

	// API v1 routes carry the per-request session context
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.sessionMiddleware.Process)
	{
		apiV1.POST("/sites", r.generationHandler.RequestSiteGeneration)
		apiV1.POST("/starter-form", r.generationHandler.SubmitStarterForm)
		apiV1.POST("/starter-credits/claim", r.generationHandler.ClaimStarterCredits)
		apiV1.POST("/checkout", r.billingHandler.CreateCheckout)
	}
}

// RegisterTestRoutes sets up endpoints for exercising the credit gate.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.sessionMiddleware.Process)
		{
			testGroup.POST("/spend-credit", r.testHandler.SpendCredit)
			testGroup.POST("/set-credits", r.testHandler.SetCredits)
		}
	}
}
