package postgres

import (
	"context"

	"mutuals/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// constraintStatements adds what struct tags cannot express.
var constraintStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_username_lower ON profiles (lower(username))`,
	`DO $$ BEGIN
		ALTER TABLE likes ADD CONSTRAINT chk_likes_not_self CHECK (liker_id <> liked_id);
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		ALTER TABLE matches ADD CONSTRAINT chk_matches_ordered CHECK (user_a < user_b);
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
}

// Migrate creates or updates every table, index and check constraint.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(model.AllModels()...); err != nil {
			return errors.Wrap(err, "failed to auto migrate models")
		}

		for _, stmt := range constraintStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return errors.Wrap(err, "failed to apply constraint")
			}
		}

		return nil
	})
}
