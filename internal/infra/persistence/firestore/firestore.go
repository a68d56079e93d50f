// Package firestore contains the concrete implementation of the persistence
// layer backed by Cloud Firestore. Document layout matches the original
// deployment: accounts live in the "users" collection keyed by uid, and
// processed payment events in "stripeEvents" keyed by event id.
package firestore

import (
	"context"

	"inador/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
)

const (
	accountsCollection = "users"
	ledgerCollection   = "stripeEvents"
)

// NewClient creates the Firestore client from the shared Firebase app.
// The returned cleanup closes the client; the caller ties it to shutdown.
func NewClient(ctx context.Context, app *firebase.App) (*firestore.Client, func() error, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create Firestore client")
	}

	return client, client.Close, nil
}
