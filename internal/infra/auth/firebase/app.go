// Package firebase integrates the Firebase Admin SDK for identity
// verification and Firestore persistence.
package firebase

import (
	"context"

	"inador/config"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase app shared by the auth client and the
// Firestore client. CredentialsPath is optional; without it the SDK falls
// back to application default credentials.
func NewApp(ctx context.Context, cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil, errors.New("firebase project ID is required")
	}

	fbConfig := &firebase.Config{ProjectID: cfg.Firebase.ProjectID}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, fbConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}
