package model

import "time"

// LedgerEntryModel is the GORM-specific struct for the 'payment_ledger' table.
// The primary key on the payment event id is what makes the credit grant
// idempotent under concurrent webhook deliveries.
type LedgerEntryModel struct {
	EventID     string    `gorm:"type:varchar(255);primary_key"`
	ProcessedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (LedgerEntryModel) TableName() string {
	return "payment_ledger"
}
