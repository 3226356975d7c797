package catalog

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product successfully", func(t *testing.T) {
		product, err := NewProduct("Walnut Desk", decimal.NewFromFloat(149.90))

		require.NoError(t, err)
		assert.Equal(t, "Walnut Desk", product.Name)
		assert.True(t, product.SalePrice.Equal(decimal.NewFromFloat(149.90)))
		assert.Equal(t, 0, product.StockQuantity)
		assert.Nil(t, product.CostPrice)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		product, err := NewProduct("  ", decimal.NewFromInt(10))

		assert.Error(t, err)
		assert.Nil(t, product)
	})

	t.Run("fails with negative sale price", func(t *testing.T) {
		product, err := NewProduct("Walnut Desk", decimal.NewFromInt(-1))

		assert.Error(t, err)
		assert.Nil(t, product)
	})
}

func TestProductSetPrices(t *testing.T) {
	product, err := NewProduct("Walnut Desk", decimal.NewFromInt(100))
	require.NoError(t, err)

	t.Run("sets cost and sale price", func(t *testing.T) {
		cost := decimal.NewFromInt(60)
		err := product.SetPrices(&cost, decimal.NewFromInt(120))

		require.NoError(t, err)
		require.NotNil(t, product.CostPrice)
		assert.True(t, product.CostPrice.Equal(cost))
		assert.True(t, product.SalePrice.Equal(decimal.NewFromInt(120)))
	})

	t.Run("rejects negative cost price", func(t *testing.T) {
		cost := decimal.NewFromInt(-5)
		err := product.SetPrices(&cost, decimal.NewFromInt(120))

		assert.Error(t, err)
	})
}

func TestProductUpdate(t *testing.T) {
	product, err := NewProduct("Walnut Desk", decimal.NewFromInt(100))
	require.NoError(t, err)

	t.Run("updates descriptive fields", func(t *testing.T) {
		err := product.Update("Oak Desk", "Craftline", "OD-200", "sturdy")

		require.NoError(t, err)
		assert.Equal(t, "Oak Desk", product.Name)
		assert.Equal(t, "Craftline", product.Brand)
		assert.Equal(t, "OD-200", product.ModelCode)
	})

	t.Run("rejects overlong brand", func(t *testing.T) {
		err := product.Update("Oak Desk", strings.Repeat("b", 101), "", "")

		assert.Error(t, err)
	})
}

func TestProductStock(t *testing.T) {
	product, err := NewProduct("Walnut Desk", decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, product.IsOutOfStock())

	product.SetStockQuantity(5)
	assert.Equal(t, 5, product.StockQuantity)
	assert.False(t, product.IsOutOfStock())

	// negative counts are allowed, sales may overdraw stock
	product.SetStockQuantity(-2)
	assert.True(t, product.IsOutOfStock())
}

func TestStockSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		settings := NewStockSettings()

		assert.Equal(t, DefaultLowStockTier1, settings.LowStockTier1)
		assert.Equal(t, DefaultLowStockTier2, settings.LowStockTier2)
	})

	t.Run("sets thresholds", func(t *testing.T) {
		settings := NewStockSettings()
		err := settings.SetThresholds(10, 30)

		require.NoError(t, err)
		assert.Equal(t, 10, settings.LowStockTier1)
		assert.Equal(t, 30, settings.LowStockTier2)
	})

	t.Run("rejects tier1 above tier2", func(t *testing.T) {
		settings := NewStockSettings()
		err := settings.SetThresholds(40, 30)

		assert.Error(t, err)
	})

	t.Run("rejects negative thresholds", func(t *testing.T) {
		settings := NewStockSettings()
		err := settings.SetThresholds(-1, 30)

		assert.Error(t, err)
	})
}
