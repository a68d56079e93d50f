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

// accountDocument mirrors the Firestore field layout for an account.
type accountDocument struct {
	Credits                 int       `firestore:"credits"`
	IsAnonymous             bool      `firestore:"isAnonymous"`
	Email                   string    `firestore:"email,omitempty"`
	LastLogin               time.Time `firestore:"lastLogin,omitempty"`
	StarterCreditsAvailable bool      `firestore:"starterCreditsAvailable"`
	CreatedAt               time.Time `firestore:"createdAt"`
	UpdatedAt               time.Time `firestore:"updatedAt"`
}

// accountRepository implements repository.AccountRepository on Firestore.
// When tx is non-nil all reads and writes go through that transaction.
type accountRepository struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// NewAccountRepository is the constructor for the non-transactional repository.
func NewAccountRepository(client *firestore.Client) repository.AccountRepository {
	return &accountRepository{client: client}
}

func (repo *accountRepository) doc(id string) *firestore.DocumentRef {
	return repo.client.Collection(accountsCollection).Doc(id)
}

// FindByID retrieves a single account by the identity uid.
func (repo *accountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	var snap *firestore.DocumentSnapshot
	var err error

	if repo.tx != nil {
		snap, err = repo.tx.Get(repo.doc(id))
	} else {
		snap, err = repo.doc(id).Get(ctx)
	}
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	var doc accountDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode account document")
	}

	return &entity.Account{
		ID:                      snap.Ref.ID,
		Credits:                 doc.Credits,
		IsAnonymous:             doc.IsAnonymous,
		Email:                   doc.Email,
		LastLogin:               doc.LastLogin,
		StarterCreditsAvailable: doc.StarterCreditsAvailable,
		CreatedAt:               doc.CreatedAt,
		UpdatedAt:               doc.UpdatedAt,
	}, nil
}

// Create persists a new account document with its starting balance.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	now := time.Now()
	doc := accountDocument{
		Credits:                 account.Credits,
		IsAnonymous:             account.IsAnonymous,
		Email:                   account.Email,
		LastLogin:               account.LastLogin,
		StarterCreditsAvailable: account.StarterCreditsAvailable,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	var err error
	if repo.tx != nil {
		err = repo.tx.Create(repo.doc(account.ID), doc)
	} else {
		_, err = repo.doc(account.ID).Create(ctx, doc)
	}
	if err != nil {
		return errors.Wrap(err, "failed to create account")
	}

	account.CreatedAt = now
	account.UpdatedAt = now

	return nil
}

// UpdateProfile merges email and last-login into the document. The field
// merge keeps credits and the starter flag untouched.
func (repo *accountRepository) UpdateProfile(ctx context.Context, id string, email string, lastLogin time.Time) error {
	data := map[string]any{
		"email":       email,
		"lastLogin":   lastLogin,
		"isAnonymous": false,
		"updatedAt":   time.Now(),
	}

	var err error
	if repo.tx != nil {
		err = repo.tx.Set(repo.doc(id), data, firestore.MergeAll)
	} else {
		_, err = repo.doc(id).Set(ctx, data, firestore.MergeAll)
	}
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to update account profile")
	}

	return nil
}

// IncrementCredits adjusts the balance by delta with a server-side increment,
// never a read-modify-write from the client.
func (repo *accountRepository) IncrementCredits(ctx context.Context, id string, delta int) error {
	updates := []firestore.Update{
		{Path: "credits", Value: firestore.Increment(delta)},
		{Path: "updatedAt", Value: time.Now()},
	}

	var err error
	if repo.tx != nil {
		err = repo.tx.Update(repo.doc(id), updates)
	} else {
		_, err = repo.doc(id).Update(ctx, updates)
	}
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to increment credits")
	}

	return nil
}

// SetCredits overwrites the balance; used for administrative resets.
func (repo *accountRepository) SetCredits(ctx context.Context, id string, credits int) error {
	updates := []firestore.Update{
		{Path: "credits", Value: credits},
		{Path: "updatedAt", Value: time.Now()},
	}

	var err error
	if repo.tx != nil {
		err = repo.tx.Update(repo.doc(id), updates)
	} else {
		_, err = repo.doc(id).Update(ctx, updates)
	}
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to set credits")
	}

	return nil
}

// SetStarterCreditsAvailable flips the starter bonus visibility flag.
func (repo *accountRepository) SetStarterCreditsAvailable(ctx context.Context, id string, available bool) error {
	updates := []firestore.Update{
		{Path: "starterCreditsAvailable", Value: available},
		{Path: "updatedAt", Value: time.Now()},
	}

	var err error
	if repo.tx != nil {
		err = repo.tx.Update(repo.doc(id), updates)
	} else {
		_, err = repo.doc(id).Update(ctx, updates)
	}
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to set starter credits flag")
	}

	return nil
}
