package postgres

import (
	"context"
	"time"

	"inador/internal/domain/entity"
	"inador/internal/domain/repository"
	"inador/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// FindByID retrieves a single account by the identity uid.
func (repo *accountRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by ID")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account record with its starting balance.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		return errors.Wrap(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// UpdateProfile merges email and last-login without touching credits.
// The explicit column list keeps credit and starter-flag fields out of the
// update statement entirely.
func (repo *accountRepository) UpdateProfile(ctx context.Context, id string, email string, lastLogin time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"email":        email,
			"last_login":   lastLogin,
			"is_anonymous": false,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update account profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// IncrementCredits atomically adjusts the balance by delta in a single
// UPDATE. Negative deltas are debits; the check constraint rejects a
// balance going below zero.
func (repo *accountRepository) IncrementCredits(ctx context.Context, id string, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("credits", gorm.Expr("credits + ?", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment credits")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// SetCredits overwrites the balance; used for administrative resets.
func (repo *accountRepository) SetCredits(ctx context.Context, id string, credits int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("credits", credits)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set credits")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// SetStarterCreditsAvailable flips the starter bonus visibility flag.
func (repo *accountRepository) SetStarterCreditsAvailable(ctx context.Context, id string, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("starter_credits_available", available)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set starter credits flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:                      data.ID,
		Credits:                 data.Credits,
		IsAnonymous:             data.IsAnonymous,
		Email:                   data.Email,
		LastLogin:               data.LastLogin,
		StarterCreditsAvailable: data.StarterCreditsAvailable,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                      data.ID,
		Credits:                 data.Credits,
		IsAnonymous:             data.IsAnonymous,
		Email:                   data.Email,
		LastLogin:               data.LastLogin,
		StarterCreditsAvailable: data.StarterCreditsAvailable,
		CreatedAt:               data.CreatedAt,
		UpdatedAt:               data.UpdatedAt,
	}
}
