package trade

import (
	"time"

	"github.com/backoffice/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest represents a request to create an order
type CreateOrderRequest struct {
	CustomerID   *uuid.UUID      `json:"customer_id"`
	TotalAmount  decimal.Decimal `json:"total_amount" binding:"required"`
	Notes        string          `json:"notes"`
	DeliveryDate *time.Time      `json:"delivery_date"`
}

// UpdateOrderRequest represents a request to update an order
type UpdateOrderRequest struct {
	TotalAmount  *decimal.Decimal `json:"total_amount"`
	Notes        *string          `json:"notes"`
	DeliveryDate *time.Time       `json:"delivery_date"`
}

// ChangeOrderStatusRequest moves an order to a new status
type ChangeOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED READY DELIVERED COMPLETED CANCELLED"`
}

// CreatePaymentRequest records a payment against an order or sale
type CreatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method" binding:"required,oneof=CASH CARD TRANSFER OTHER"`
	Notes  string          `json:"notes"`
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID     uuid.UUID       `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Notes  string          `json:"notes"`
	PaidAt time.Time       `json:"paid_at"`
}

// OrderResponse represents an order in API responses. PaidTotal and
// AmountDue are derived from the loaded payments on every read.
type OrderResponse struct {
	ID           uuid.UUID         `json:"id"`
	CustomerID   *uuid.UUID        `json:"customer_id,omitempty"`
	CustomerName string            `json:"customer_name"`
	TotalAmount  decimal.Decimal   `json:"total_amount"`
	PaidTotal    decimal.Decimal   `json:"paid_total"`
	AmountDue    decimal.Decimal   `json:"amount_due"`
	Status       string            `json:"status"`
	Notes        string            `json:"notes"`
	DeliveryDate *time.Time        `json:"delivery_date,omitempty"`
	Payments     []PaymentResponse `json:"payments"`
	OrderedAt    time.Time         `json:"ordered_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ToOrderResponse converts an order entity to a response DTO
func ToOrderResponse(order *trade.Order) *OrderResponse {
	customerName := ""
	if order.CustomerID != nil {
		customerName = "(deleted customer)"
	}
	if order.Customer != nil {
		customerName = order.Customer.FullName()
	}

	payments := make([]PaymentResponse, 0, len(order.Payments))
	for _, p := range order.Payments {
		payments = append(payments, PaymentResponse{
			ID:     p.ID,
			Amount: p.Amount,
			Method: string(p.Method),
			Notes:  p.Notes,
			PaidAt: p.CreatedAt,
		})
	}

	return &OrderResponse{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		CustomerName: customerName,
		TotalAmount:  order.TotalAmount,
		PaidTotal:    order.PaidTotal(),
		AmountDue:    order.AmountDue(),
		Status:       string(order.Status),
		Notes:        order.Notes,
		DeliveryDate: order.DeliveryDate,
		Payments:     payments,
		OrderedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of order entities
func ToOrderResponses(orders []trade.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *ToOrderResponse(&orders[i]))
	}
	return responses
}

// CreateSaleRequest represents a request to record a sale
type CreateSaleRequest struct {
	CustomerID    *uuid.UUID              `json:"customer_id"`
	PaymentMethod string                  `json:"payment_method" binding:"required,oneof=CASH CARD TRANSFER OTHER"`
	Notes         string                  `json:"notes"`
	Items         []CreateSaleItemRequest `json:"items" binding:"dive"`
}

// UpdateSaleRequest represents a request to update a sale header
type UpdateSaleRequest struct {
	CustomerID    *uuid.UUID `json:"customer_id"`
	ClearCustomer bool       `json:"clear_customer"`
	PaymentMethod *string    `json:"payment_method" binding:"omitempty,oneof=CASH CARD TRANSFER OTHER"`
	Notes         *string    `json:"notes"`
}

// CreateSaleItemRequest adds a line item to a sale. A zero or omitted unit
// price is filled from the product's current sale price at save time.
type CreateSaleItemRequest struct {
	ProductID *uuid.UUID      `json:"product_id"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// UpdateSaleItemRequest changes a line item's quantity or price
type UpdateSaleItemRequest struct {
	Quantity  *int             `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// SaleItemResponse represents a line item in API responses
type SaleItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// SaleResponse represents a sale in API responses. ComputedTotal, PaidTotal
// and AmountDue are derived from the loaded rows on every read, never
// stored.
type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	CustomerID    *uuid.UUID         `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes"`
	Items         []SaleItemResponse `json:"items"`
	Payments      []PaymentResponse  `json:"payments"`
	ComputedTotal decimal.Decimal    `json:"computed_total"`
	PaidTotal     decimal.Decimal    `json:"paid_total"`
	AmountDue     decimal.Decimal    `json:"amount_due"`
	SoldAt        time.Time          `json:"sold_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// ToSaleItemResponse converts a line item entity to a response DTO
func ToSaleItemResponse(item *trade.SaleLineItem) *SaleItemResponse {
	productName := ""
	if item.ProductID != nil {
		productName = "(deleted product)"
	}
	if item.Product != nil {
		productName = item.Product.Name
	}
	return &SaleItemResponse{
		ID:          item.ID,
		ProductID:   item.ProductID,
		ProductName: productName,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice,
		LineTotal:   item.LineTotal(),
	}
}

// ToSaleResponse converts a sale entity to a response DTO
func ToSaleResponse(sale *trade.Sale) *SaleResponse {
	customerName := ""
	if sale.CustomerID != nil {
		customerName = "(deleted customer)"
	}
	if sale.Customer != nil {
		customerName = sale.Customer.FullName()
	}

	items := make([]SaleItemResponse, 0, len(sale.Items))
	for i := range sale.Items {
		items = append(items, *ToSaleItemResponse(&sale.Items[i]))
	}

	payments := make([]PaymentResponse, 0, len(sale.Payments))
	for _, p := range sale.Payments {
		payments = append(payments, PaymentResponse{
			ID:     p.ID,
			Amount: p.Amount,
			Method: string(p.Method),
			Notes:  p.Notes,
			PaidAt: p.CreatedAt,
		})
	}

	return &SaleResponse{
		ID:            sale.ID,
		CustomerID:    sale.CustomerID,
		CustomerName:  customerName,
		PaymentMethod: string(sale.PaymentMethod),
		Notes:         sale.Notes,
		Items:         items,
		Payments:      payments,
		ComputedTotal: sale.ComputedTotal(),
		PaidTotal:     sale.PaidTotal(),
		AmountDue:     sale.AmountDue(),
		SoldAt:        sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
	}
}

// ToSaleResponses converts a slice of sale entities
func ToSaleResponses(sales []trade.Sale) []SaleResponse {
	responses := make([]SaleResponse, 0, len(sales))
	for i := range sales {
		responses = append(responses, *ToSaleResponse(&sales[i]))
	}
	return responses
}
