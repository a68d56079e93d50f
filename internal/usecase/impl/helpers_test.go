package impl

import (
	"io"
	"log/slog"
	"time"

	"inador/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			VerificationTimeout: 2 * time.Minute,
			PendingActionTTL:    30 * time.Minute,
			RedirectMarkerTTL:   5 * time.Minute,
		},
		Stripe: &config.StripeConfig{
			AppDomain:          "http://127.0.0.1:5500",
			StarterCheckoutURL: "https://buy.example.com/starter",
		},
	}

	return cfg
}
