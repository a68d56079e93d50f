// Package sessionstore provides the per-session pending-action state behind
// the ActionStore interface, with memory and Redis backends.
package sessionstore

import (
	"context"
	"log/slog"

	"inador/config"
	"inador/internal/domain/constants"
	"inador/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the ActionStore, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewActionStore creates an ActionStore based on configuration.
func NewActionStore(params Params) (service.ActionStore, error) {
	cfg := params.Config.SessionStore
	authCfg := params.Config.Auth

	provider := constants.SessionStoreProviderMemory
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case constants.SessionStoreProviderMemory:
		params.Logger.Info("Using in-memory session store")

		return NewMemoryStore(authCfg.PendingActionTTL, authCfg.RedirectMarkerTTL), nil

	case constants.SessionStoreProviderRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis address is required for the redis session store")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		params.Logger.Info("Using Redis session store",
			slog.String("addr", params.Config.Redis.Addr),
		)

		return NewRedisStore(client, authCfg.PendingActionTTL, authCfg.RedirectMarkerTTL), nil

	default:
		return nil, errors.Errorf("unknown session store provider: %s", provider)
	}
}

// Module provides the session store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewActionStore),
)
