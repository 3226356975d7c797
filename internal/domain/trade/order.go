package trade

import (
	"time"

	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"   // awaiting payment
	OrderStatusConfirmed OrderStatus = "CONFIRMED" // in production / being prepared
	OrderStatusReady     OrderStatus = "READY"     // ready for delivery
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// ValidateOrderStatus checks that the status is a known value.
func ValidateOrderStatus(status OrderStatus) error {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled:
		return nil
	default:
		return shared.NewDomainError("INVALID_ORDER_STATUS", "Unknown order status: "+string(status))
	}
}

// CompletedOrderStatuses are the statuses whose payments count toward net
// profit.
func CompletedOrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusDelivered, OrderStatusCompleted}
}

// Order represents a customer order with a manually entered total. The
// amount still owed is always derived from the loaded payments, never
// stored, so it cannot drift from the payment rows.
type Order struct {
	shared.BaseEntity
	CustomerID   *uuid.UUID        `gorm:"type:uuid;index"`
	Customer     *partner.Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	TotalAmount  decimal.Decimal   `gorm:"type:decimal(10,2);not null;default:0"`
	Status       OrderStatus       `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Notes        string            `gorm:"type:text"`
	DeliveryDate *time.Time        `gorm:"type:date"`
	Payments     []OrderPayment    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new pending order. CreatedAt is the order date and is
// never modified afterwards.
func NewOrder(customerID *uuid.UUID, totalAmount decimal.Decimal) (*Order, error) {
	if totalAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Order total cannot be negative")
	}

	return &Order{
		BaseEntity:  shared.NewBaseEntity(),
		CustomerID:  customerID,
		TotalAmount: totalAmount,
		Status:      OrderStatusPending,
	}, nil
}

// Update updates the order's mutable fields. The order date stays fixed.
func (o *Order) Update(totalAmount decimal.Decimal, notes string, deliveryDate *time.Time) error {
	if totalAmount.IsNegative() {
		return shared.NewDomainError("INVALID_TOTAL", "Order total cannot be negative")
	}

	o.TotalAmount = totalAmount
	o.Notes = notes
	o.DeliveryDate = deliveryDate
	o.Touch()

	return nil
}

// ChangeStatus moves the order to a new status.
func (o *Order) ChangeStatus(status OrderStatus) error {
	if err := ValidateOrderStatus(status); err != nil {
		return err
	}
	if o.Status == OrderStatusCancelled && status != OrderStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cancelled orders cannot change status")
	}

	o.Status = status
	o.Touch()

	return nil
}

// IsCompleted reports whether the order's payments count toward net profit.
func (o *Order) IsCompleted() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusCompleted
}

// PaidTotal sums the loaded payments.
func (o *Order) PaidTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// AmountDue returns the outstanding balance, total minus payments. May be
// negative when the order is overpaid.
func (o *Order) AmountDue() decimal.Decimal {
	return o.TotalAmount.Sub(o.PaidTotal())
}

// OrderPayment records money received against an order. Payments are
// immutable once created; corrections are new rows.
type OrderPayment struct {
	shared.BaseEntity
	OrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Method  PaymentMethod   `gorm:"type:varchar(20);not null;default:'CASH'"`
	Notes   string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OrderPayment) TableName() string {
	return "order_payments"
}

// NewOrderPayment creates a payment against an order. CreatedAt is the
// payment timestamp.
func NewOrderPayment(orderID uuid.UUID, amount decimal.Decimal, method PaymentMethod, notes string) (*OrderPayment, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if err := ValidatePaymentMethod(method); err != nil {
		return nil, err
	}

	return &OrderPayment{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		Amount:     amount,
		Method:     method,
		Notes:      notes,
	}, nil
}
