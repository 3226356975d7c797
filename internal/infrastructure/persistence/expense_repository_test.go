package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/backoffice/backend/internal/domain/finance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseCategoryListAll(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewGormExpenseCategoryRepository(db)

	t.Run("empty without categories", func(t *testing.T) {
		categories, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, categories)
	})

	t.Run("returns every category beyond a page size, ordered by name", func(t *testing.T) {
		for i := 0; i < 230; i++ {
			category, err := finance.NewExpenseCategory(fmt.Sprintf("Kategori %03d", i), "")
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, category))
		}

		categories, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 230)
		assert.Equal(t, "Kategori 000", categories[0].Name)
		assert.Equal(t, "Kategori 229", categories[229].Name)
	})
}
