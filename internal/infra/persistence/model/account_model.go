// Package model holds the GORM-specific structs for the relational backend.
package model

import (
	"time"
)

// AccountModel is the GORM-specific struct for the 'accounts' table.
// The primary key is the identity provider uid, not a generated id, so the
// record survives an anonymous-to-verified upgrade unchanged.
type AccountModel struct {
	ID                      string `gorm:"type:varchar(128);primary_key"`
	Credits                 int    `gorm:"not null;default:0;check:credits >= 0"`
	IsAnonymous             bool   `gorm:"not null;default:true"`
	Email                   string `gorm:"type:varchar(255)"`
	LastLogin               time.Time
	StarterCreditsAvailable bool `gorm:"not null;default:false"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
