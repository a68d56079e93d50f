// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the per-identity credit record. One account exists per
// authenticated principal; the account ID is the identity provider's uid and
// stays stable when an anonymous identity is upgraded to a verified one.
type Account struct {
	ID                      string    // Identity provider uid; the document/row key.
	Credits                 int       // Non-negative credit balance.
	IsAnonymous             bool      // True until the principal completes identity verification.
	Email                   string    // Informational only; never gates behavior.
	LastLogin               time.Time // Informational only; never gates behavior.
	StarterCreditsAvailable bool      // Controls visibility of the one-time starter bonus claim.
	CreatedAt               time.Time // Timestamp of when this account record was created.
	UpdatedAt               time.Time // Timestamp of the last modification to this record.
}
