package service

import "context"

// StarterFormMail is the operator notification for a submitted starter form.
type StarterFormMail struct {
	UserEmail string
	UserPhone string
	UID       string
}

// SiteRequestMail is the operator notification for a site-generation request.
type SiteRequestMail struct {
	RequestID string
	AccountID string
	Email     string
	Vision    string
	Answers   map[string]string
}

// MailService dispatches outbound operator notifications. Callers treat it
// as a best-effort side channel, not part of the core contract.
type MailService interface {
	SendStarterForm(ctx context.Context, mail *StarterFormMail) error
	SendSiteRequest(ctx context.Context, mail *SiteRequestMail) error
}
