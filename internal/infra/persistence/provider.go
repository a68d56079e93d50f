// Package persistence selects the concrete store backend behind the domain
// repository interfaces.
package persistence

import (
	"context"
	"log/slog"

	"inador/config"
	"inador/internal/domain/constants"
	"inador/internal/domain/repository"
	firestoreStore "inador/internal/infra/persistence/firestore"
	postgresStore "inador/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Store bundles the repository implementations of one backend.
type Store struct {
	fx.Out

	AccountRepo repository.AccountRepository
	LedgerRepo  repository.LedgerRepository
	TxManager   repository.TransactionManager
}

// Params holds dependencies for the store provider, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

// NewStore creates the repository set based on configuration.
func NewStore(params Params) (Store, error) {
	cfg := params.Config.Store
	provider := constants.StoreProviderFirestore
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case constants.StoreProviderFirestore:
		if params.App == nil {
			return Store{}, errors.New("firebase app is required for the firestore store provider")
		}

		client, cleanup, err := firestoreStore.NewClient(params.Ctx, params.App)
		if err != nil {
			return Store{}, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return cleanup()
			},
		})

		params.Logger.Info("Using Firestore store provider")

		return Store{
			AccountRepo: firestoreStore.NewAccountRepository(client),
			LedgerRepo:  firestoreStore.NewLedgerRepository(client),
			TxManager:   firestoreStore.NewTransactionManager(client),
		}, nil

	case constants.StoreProviderPostgres:
		db, cleanup, err := postgresStore.New(params.Ctx, params.Config, params.Logger)
		if err != nil {
			return Store{}, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return cleanup()
			},
		})

		params.Logger.Info("Using Postgres store provider")

		return Store{
			AccountRepo: postgresStore.NewAccountRepository(db),
			LedgerRepo:  postgresStore.NewLedgerRepository(db),
			TxManager:   postgresStore.NewTransactionManager(db),
		}, nil

	default:
		return Store{}, errors.Errorf("unknown store provider: %s", provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
