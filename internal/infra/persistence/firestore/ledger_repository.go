package firestore

import (
	"context"
	"time"

	"inador/internal/domain/entity"
	"inador/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ledgerDocument mirrors the Firestore field layout for a processed event.
type ledgerDocument struct {
	ProcessedAt time.Time `firestore:"processedAt"`
}

// ledgerRepository implements repository.LedgerRepository on Firestore.
type ledgerRepository struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// NewLedgerRepository is the constructor for the non-transactional repository.
func NewLedgerRepository(client *firestore.Client) repository.LedgerRepository {
	return &ledgerRepository{client: client}
}

func (repo *ledgerRepository) doc(eventID string) *firestore.DocumentRef {
	return repo.client.Collection(ledgerCollection).Doc(eventID)
}

// Find retrieves the ledger entry for a payment event id.
func (repo *ledgerRepository) Find(ctx context.Context, eventID string) (*entity.LedgerEntry, error) {
	var snap *firestore.DocumentSnapshot
	var err error

	if repo.tx != nil {
		snap, err = repo.tx.Get(repo.doc(eventID))
	} else {
		snap, err = repo.doc(eventID).Get(ctx)
	}
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrLedgerEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find ledger entry")
	}

	var doc ledgerDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode ledger document")
	}

	return &entity.LedgerEntry{
		EventID:     snap.Ref.ID,
		ProcessedAt: doc.ProcessedAt,
	}, nil
}

// Create writes the ledger entry. Create (not Set) fails on an existing
// document, which surfaces a concurrent duplicate as ErrLedgerEntryExists.
func (repo *ledgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	doc := ledgerDocument{ProcessedAt: entry.ProcessedAt}

	var err error
	if repo.tx != nil {
		err = repo.tx.Create(repo.doc(entry.EventID), doc)
	} else {
		_, err = repo.doc(entry.EventID).Create(ctx, doc)
	}
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrLedgerEntryExists
		}

		return errors.Wrap(err, "failed to create ledger entry")
	}

	return nil
}
