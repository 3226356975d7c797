package handler

import (
	tradeapp "github.com/backoffice/backend/internal/application/trade"
	"github.com/gin-gonic/gin"
)

// SaleHandler handles walk-in sale API endpoints
type SaleHandler struct {
	BaseHandler
	saleService *tradeapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *tradeapp.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// RegisterRoutes registers sale routes on the given group
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("", h.Create)
		sales.GET("", h.List)
		sales.GET("/:id", h.GetByID)
		sales.PUT("/:id", h.Update)
		sales.DELETE("/:id", h.Delete)
		sales.POST("/:id/items", h.AddItem)
		sales.PUT("/:id/items/:itemID", h.UpdateItem)
		sales.DELETE("/:id/items/:itemID", h.RemoveItem)
		sales.POST("/:id/payments", h.AddPayment)
		sales.DELETE("/:id/payments/:paymentID", h.DeletePayment)
	}
}

// Create records a sale, optionally with its initial line items
func (h *SaleHandler) Create(c *gin.Context) {
	var req tradeapp.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	sale, err := h.saleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, sale)
}

// GetByID returns a single sale with items and payments
func (h *SaleHandler) GetByID(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	sale, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sale)
}

// List returns a paginated sale list
func (h *SaleHandler) List(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	page, err := h.saleService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Paginated(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update modifies the sale header
func (h *SaleHandler) Update(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req tradeapp.UpdateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	sale, err := h.saleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sale)
}

// Delete removes a sale, its items and payments, returning tracked stock
// to inventory.
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.saleService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// AddItem adds a line item to an existing sale
func (h *SaleHandler) AddItem(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req tradeapp.CreateSaleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	sale, err := h.saleService.AddItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, sale)
}

// UpdateItem changes a line item's quantity or unit price
func (h *SaleHandler) UpdateItem(c *gin.Context) {
	saleID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := h.parseUUIDParam(c, "itemID")
	if !ok {
		return
	}

	var req tradeapp.UpdateSaleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	sale, err := h.saleService.UpdateItem(c.Request.Context(), saleID, itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sale)
}

// RemoveItem deletes a line item, restoring tracked stock
func (h *SaleHandler) RemoveItem(c *gin.Context) {
	saleID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := h.parseUUIDParam(c, "itemID")
	if !ok {
		return
	}

	sale, err := h.saleService.RemoveItem(c.Request.Context(), saleID, itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sale)
}

// AddPayment records a payment against a sale
func (h *SaleHandler) AddPayment(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req tradeapp.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	sale, err := h.saleService.AddPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, sale)
}

// DeletePayment removes a payment from a sale
func (h *SaleHandler) DeletePayment(c *gin.Context) {
	saleID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	paymentID, ok := h.parseUUIDParam(c, "paymentID")
	if !ok {
		return
	}

	if err := h.saleService.DeletePayment(c.Request.Context(), saleID, paymentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
