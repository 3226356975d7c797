package catalog

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindByName finds a category by its unique name
	FindByName(ctx context.Context, name string) (*Category, error)

	// FindAll finds all categories matching the filter, ordered by name
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category; products referencing it fall back to nil
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts categories matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll finds all products matching the filter, ordered by name
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)

	// FindByCategory finds all products in a category
	FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product; sale line items referencing it keep their rows
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts products matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountOutOfStock counts products with stock quantity exactly zero
	CountOutOfStock(ctx context.Context) (int64, error)

	// CountLowStock counts products with 0 < stock quantity <= threshold
	CountLowStock(ctx context.Context, threshold int) (int64, error)
}

// StockSettingsRepository persists the singleton stock settings row.
type StockSettingsRepository interface {
	// Get returns the settings row, or shared.ErrNotFound when none exists
	Get(ctx context.Context) (*StockSettings, error)

	// Save creates or updates the settings row; creating a second row is
	// rejected with shared.ErrAlreadyExists
	Save(ctx context.Context, settings *StockSettings) error
}
