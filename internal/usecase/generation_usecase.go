package usecase

import (
	"context"

	"inador/internal/domain/entity"
)

// SiteRequestInput is the questionnaire a visitor fills to request a site.
type SiteRequestInput struct {
	Vision       string            `json:"vision" validate:"required"`
	ContactEmail string            `json:"contactEmail" validate:"required,email"`
	Answers      map[string]string `json:"answers"`
}

// StarterFormInput is the starter contact form.
type StarterFormInput struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// GenerationUsecase covers the credit-gated site-generation request and the
// starter form flow.
type GenerationUsecase interface {
	// RequestSiteGeneration debits the generation cost and publishes the
	// request event for asynchronous processing. A failed publish refunds
	// the debit so credits are only spent on submitted requests.
	RequestSiteGeneration(ctx context.Context, sess *entity.Session, input *SiteRequestInput) (requestID string, err error)

	// SubmitStarterForm dispatches the operator notification and unlocks
	// the one-time starter bonus for the account.
	SubmitStarterForm(ctx context.Context, sess *entity.Session, input *StarterFormInput) error
}
