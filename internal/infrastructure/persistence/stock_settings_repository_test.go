package persistence

import (
	"context"
	"testing"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockSettingsSingleton(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewGormStockSettingsRepository(db)

	t.Run("absent row maps to ErrNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("first save creates the row with defaults", func(t *testing.T) {
		settings := catalog.NewStockSettings()
		require.NoError(t, repo.Save(ctx, settings))

		loaded, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, catalog.DefaultLowStockTier1, loaded.LowStockTier1)
		assert.Equal(t, catalog.DefaultLowStockTier2, loaded.LowStockTier2)
	})

	t.Run("updating the existing row is allowed", func(t *testing.T) {
		loaded, err := repo.Get(ctx)
		require.NoError(t, err)
		require.NoError(t, loaded.SetThresholds(10, 30))
		require.NoError(t, repo.Save(ctx, loaded))

		again, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 10, again.LowStockTier1)
		assert.Equal(t, 30, again.LowStockTier2)
	})

	t.Run("a second row is rejected", func(t *testing.T) {
		second := catalog.NewStockSettings()
		assert.ErrorIs(t, repo.Save(ctx, second), shared.ErrAlreadyExists)
	})
}
