package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStockSettingsRepository implements StockSettingsRepository using GORM.
// Settings live in a single-row table; the dashboard degrades gracefully
// when the row has not been created yet.
type GormStockSettingsRepository struct {
	db *gorm.DB
}

// NewGormStockSettingsRepository creates a new GormStockSettingsRepository
func NewGormStockSettingsRepository(db *gorm.DB) *GormStockSettingsRepository {
	return &GormStockSettingsRepository{db: db}
}

// Get returns the settings row, or shared.ErrNotFound when none exists
func (r *GormStockSettingsRepository) Get(ctx context.Context) (*catalog.StockSettings, error) {
	var settings catalog.StockSettings
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &settings, nil
}

// Save creates or updates the settings row. A second row is rejected to
// keep the table a singleton.
func (r *GormStockSettingsRepository) Save(ctx context.Context, settings *catalog.StockSettings) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&catalog.StockSettings{}).
			Where("id <> ?", settings.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return shared.ErrAlreadyExists
		}
		return tx.Save(settings).Error
	})
}

// Ensure GormStockSettingsRepository implements StockSettingsRepository
var _ catalog.StockSettingsRepository = (*GormStockSettingsRepository)(nil)
