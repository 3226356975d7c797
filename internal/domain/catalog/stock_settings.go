package catalog

import (
	"github.com/backoffice/backend/internal/domain/shared"
)

// Default low-stock thresholds applied when settings are first created.
const (
	DefaultLowStockTier1 = 20
	DefaultLowStockTier2 = 50
)

// StockSettings holds the low-stock alert thresholds. At most one row
// exists; the repository enforces the singleton and reports absence with
// shared.ErrNotFound so callers can degrade to unconfigured behavior.
type StockSettings struct {
	shared.BaseEntity
	LowStockTier1 int `gorm:"not null;default:20"`
	LowStockTier2 int `gorm:"not null;default:50"`
}

// TableName returns the table name for GORM
func (StockSettings) TableName() string {
	return "stock_settings"
}

// NewStockSettings creates the settings row with default thresholds.
func NewStockSettings() *StockSettings {
	return &StockSettings{
		BaseEntity:    shared.NewBaseEntity(),
		LowStockTier1: DefaultLowStockTier1,
		LowStockTier2: DefaultLowStockTier2,
	}
}

// SetThresholds updates both alert tiers. Tier 1 is the more urgent alert
// and must not exceed tier 2.
func (s *StockSettings) SetThresholds(tier1, tier2 int) error {
	if tier1 < 0 || tier2 < 0 {
		return shared.NewDomainError("INVALID_THRESHOLD", "Stock thresholds cannot be negative")
	}
	if tier1 > tier2 {
		return shared.NewDomainError("INVALID_THRESHOLD", "Tier 1 threshold cannot exceed tier 2")
	}

	s.LowStockTier1 = tier1
	s.LowStockTier2 = tier2
	s.Touch()

	return nil
}
