package main

import (
	"context"
	"log/slog"

	"mutuals/config"
	logs "mutuals/internal/infra/log"
	"mutuals/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(
			runMigrations,
		),
	).Run()
}

// runMigrations runs after the database hook has pinged the server, then stops the app.
func runMigrations(params migrateParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Logger.Info("Applying schema migrations")

			if err := postgres.Migrate(ctx, params.DB); err != nil {
				return err
			}

			params.Logger.Info("Schema is up to date")

			return params.Shutdown()
		},
	})
}
