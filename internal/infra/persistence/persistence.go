// Package persistence selects the store that backs the repository ports.
package persistence

import (
	"log/slog"

	"mutuals/config"
	"mutuals/internal/domain/repository"
	"mutuals/internal/infra/persistence/memory"
	"mutuals/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is every repository port plus the transaction manager over the same store.
type Repositories struct {
	fx.Out

	ProfileRepo      repository.ProfileRepository
	ContactRepo      repository.ContactRepository
	LikeRepo         repository.LikeRepository
	MatchRepo        repository.MatchRepository
	NotificationRepo repository.NotificationRepository
	TxManager        repository.TransactionManager
}

// New builds the repositories for the configured store driver.
func New(params Params) (Repositories, error) {
	switch driver := params.Config.Store.Driver; driver {
	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		params.Logger.Info("Using PostgreSQL store")

		return Repositories{
			ProfileRepo:      postgres.NewProfileRepository(db),
			ContactRepo:      postgres.NewContactRepository(db),
			LikeRepo:         postgres.NewLikeRepository(db),
			MatchRepo:        postgres.NewMatchRepository(db),
			NotificationRepo: postgres.NewNotificationRepository(db),
			TxManager:        postgres.NewTransactionManager(db),
		}, nil
	case config.StoreDriverMemory:
		params.Logger.Warn("Using in-memory store, data is lost on restart")

		return FromMemory(memory.New()), nil
	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", driver)
	}
}

// FromMemory exposes store through the repository ports.
func FromMemory(store *memory.Store) Repositories {
	return Repositories{
		ProfileRepo:      store.Profiles(),
		ContactRepo:      store.Contacts(),
		LikeRepo:         store.Likes(),
		MatchRepo:        store.Matches(),
		NotificationRepo: store.Notifications(),
		TxManager:        store.TransactionManager(),
	}
}
