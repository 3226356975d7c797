package handler

import (
	catalogapp "github.com/backoffice/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// StockSettingsHandler handles the stock alert settings endpoints
type StockSettingsHandler struct {
	BaseHandler
	settingsService *catalogapp.StockSettingsService
}

// NewStockSettingsHandler creates a new StockSettingsHandler
func NewStockSettingsHandler(settingsService *catalogapp.StockSettingsService) *StockSettingsHandler {
	return &StockSettingsHandler{settingsService: settingsService}
}

// RegisterRoutes registers stock settings routes on the given group
func (h *StockSettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/stock-settings")
	{
		settings.GET("", h.Get)
		settings.PUT("", h.Update)
	}
}

// Get returns the current low-stock thresholds
func (h *StockSettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, settings)
}

// Update sets the low-stock thresholds, creating the settings row on
// first use.
func (h *StockSettingsHandler) Update(c *gin.Context) {
	var req catalogapp.UpdateStockSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, settings)
}
