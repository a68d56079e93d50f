// Package constants holds shared domain-level constants.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Store provider names for the account/ledger persistence backend.
const (
	StoreProviderFirestore = "firestore"
	StoreProviderPostgres  = "postgres"
)

// Session store provider names for pending-action state.
const (
	SessionStoreProviderMemory = "memory"
	SessionStoreProviderRedis  = "redis"
)

// PubSub provider names.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Credit amounts. The starting balance is written exactly once when an
// account record is first created; the checkout grant is applied exactly
// once per payment event.
const (
	StartingCredits      = 10
	SiteGenerationCost   = 10
	CheckoutGrantCredits = 100
	StarterBonusCredits  = 100
)
