package handler

import (
	tradeapp "github.com/backoffice/backend/internal/application/trade"
	"github.com/backoffice/backend/internal/domain/trade"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles custom order API endpoints
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// RegisterRoutes registers order routes on the given group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
		orders.PUT("/:id/status", h.ChangeStatus)
		orders.POST("/:id/payments", h.AddPayment)
		orders.DELETE("/:id/payments/:paymentID", h.DeletePayment)
	}
}

// Create places a new order
func (h *OrderHandler) Create(c *gin.Context) {
	var req tradeapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, order)
}

// GetByID returns a single order with its payments
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// List returns orders, optionally narrowed to one status via the status
// query parameter.
func (h *OrderHandler) List(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	if status := c.Query("status"); status != "" {
		orderStatus := trade.OrderStatus(status)
		if err := trade.ValidateOrderStatus(orderStatus); err != nil {
			h.HandleDomainError(c, err)
			return
		}
		orders, err := h.orderService.ListByStatus(c.Request.Context(), orderStatus, filter)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, orders)
		return
	}

	page, err := h.orderService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Paginated(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update modifies an order's amount, notes or delivery date
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req tradeapp.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	order, err := h.orderService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// ChangeStatus moves an order to a new lifecycle status
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req tradeapp.ChangeOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	order, err := h.orderService.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// Delete removes an order together with its payments
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// AddPayment records a payment against an order
func (h *OrderHandler) AddPayment(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req tradeapp.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	order, err := h.orderService.AddPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, order)
}

// DeletePayment removes a payment from an order
func (h *OrderHandler) DeletePayment(c *gin.Context) {
	orderID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}
	paymentID, ok := h.parseUUIDParam(c, "paymentID")
	if !ok {
		return
	}

	if err := h.orderService.DeletePayment(c.Request.Context(), orderID, paymentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
