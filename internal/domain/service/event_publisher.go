package service

import "context"

// SiteRequestEvent is a submitted site-generation request, published for
// asynchronous processing by the worker.
type SiteRequestEvent struct {
	RequestID string            `json:"request_id"` // For distributed tracing and mail subject lines.
	AccountID string            `json:"account_id"`
	Email     string            `json:"email"`   // Where the finished site link should be sent.
	Vision    string            `json:"vision"`  // The one-phrase site vision from the questionnaire.
	Answers   map[string]string `json:"answers"` // Remaining questionnaire answers, keyed by question id.
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishSiteRequest publishes a site-generation request for async processing.
	PublishSiteRequest(ctx context.Context, event *SiteRequestEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
