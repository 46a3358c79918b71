package persistence

import (
	"io"
	"log/slog"
	"testing"

	"mutuals/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("memory driver", func(t *testing.T) {
		cfg := &config.Config{Store: &config.StoreConfig{Driver: config.StoreDriverMemory}}

		repos, err := New(Params{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
		require.NoError(t, err)
		assert.NotNil(t, repos.ProfileRepo)
		assert.NotNil(t, repos.ContactRepo)
		assert.NotNil(t, repos.LikeRepo)
		assert.NotNil(t, repos.MatchRepo)
		assert.NotNil(t, repos.NotificationRepo)
		assert.NotNil(t, repos.TxManager)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &config.Config{Store: &config.StoreConfig{Driver: "sqlite"}}

		_, err := New(Params{Lifecycle: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})
		assert.ErrorContains(t, err, "unknown store driver")
	})
}
