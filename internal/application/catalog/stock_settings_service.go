package catalog

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
)

// StockSettingsService manages the singleton low-stock threshold row.
type StockSettingsService struct {
	settingsRepo catalog.StockSettingsRepository
}

// NewStockSettingsService creates a new StockSettingsService
func NewStockSettingsService(settingsRepo catalog.StockSettingsRepository) *StockSettingsService {
	return &StockSettingsService{
		settingsRepo: settingsRepo,
	}
}

// Get returns the configured thresholds, or shared.ErrNotFound when the
// settings row was never created. Callers are expected to treat absence as
// "no threshold configured", not as a failure.
func (s *StockSettingsService) Get(ctx context.Context) (*StockSettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return ToStockSettingsResponse(settings), nil
}

// Update sets the thresholds, creating the singleton row on first use.
func (s *StockSettingsService) Update(ctx context.Context, req UpdateStockSettingsRequest) (*StockSettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		settings = catalog.NewStockSettings()
	}

	if err := settings.SetThresholds(req.LowStockTier1, req.LowStockTier2); err != nil {
		return nil, err
	}
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return ToStockSettingsResponse(settings), nil
}
