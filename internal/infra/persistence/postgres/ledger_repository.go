package postgres

import (
	"context"

	"inador/internal/domain/entity"
	"inador/internal/domain/repository"
	"inador/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ledgerRepository implements the repository.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Find retrieves the ledger entry for a payment event id.
func (repo *ledgerRepository) Find(ctx context.Context, eventID string) (*entity.LedgerEntry, error) {
	var entryM model.LedgerEntryModel

	if err := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLedgerEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find ledger entry")
	}

	return &entity.LedgerEntry{
		EventID:     entryM.EventID,
		ProcessedAt: entryM.ProcessedAt,
	}, nil
}

// Create writes the ledger entry. The primary key on event_id turns a
// concurrent duplicate into ErrLedgerEntryExists instead of a double grant.
func (repo *ledgerRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	entryM := &model.LedgerEntryModel{
		EventID:     entry.EventID,
		ProcessedAt: entry.ProcessedAt,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repository.ErrLedgerEntryExists
		}

		return errors.Wrap(err, "failed to create ledger entry")
	}

	return nil
}
