package trade

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindByID finds an order by its ID, with customer and payments loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll finds all orders matching the filter, newest first by default
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)

	// FindByStatus finds orders in a given status
	FindByStatus(ctx context.Context, status OrderStatus, filter shared.Filter) ([]Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *Order) error

	// Delete deletes an order and, via cascade, its payments
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByStatus counts orders in a given status
	CountByStatus(ctx context.Context, status OrderStatus) (int64, error)
}

// OrderPaymentRepository persists order payments. Payments have no update
// path; a wrong payment is deleted and re-entered.
type OrderPaymentRepository interface {
	// FindByID finds a payment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*OrderPayment, error)

	// FindByOrder finds all payments for an order, newest first
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]OrderPayment, error)

	// Create inserts a new payment
	Create(ctx context.Context, payment *OrderPayment) error

	// Delete deletes a payment
	Delete(ctx context.Context, id uuid.UUID) error
}

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// FindByID finds a sale by its ID, with customer, items and payments loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindAll finds all sales matching the filter, newest first by default
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)

	// Save creates or updates a sale header; line items go through
	// SaleLineItemRepository so stock stays consistent
	Save(ctx context.Context, sale *Sale) error

	// Delete deletes a sale and, via cascade, its items and payments.
	// Stock consumed by the sale's line items is restored in the same
	// transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts sales matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// SaleLineItemRepository persists sale line items. Every write doubles as a
// stock adjustment on the linked product: the row write and a single atomic
// stock update commit or roll back together, so concurrent sales against
// the same product never lose updates.
type SaleLineItemRepository interface {
	// FindByID finds a line item by its ID, with the product loaded
	FindByID(ctx context.Context, id uuid.UUID) (*SaleLineItem, error)

	// FindBySale finds all line items for a sale
	FindBySale(ctx context.Context, saleID uuid.UUID) ([]SaleLineItem, error)

	// Create inserts the line item and decrements the linked product's
	// stock by its quantity when current stock is positive. A zero unit
	// price is filled from the product's sale price before the write.
	Create(ctx context.Context, item *SaleLineItem) error

	// Update rewrites the line item and applies the quantity delta to the
	// product's stock (raising quantity reduces stock further, lowering it
	// restores stock) when stock is positive or the delta restores stock.
	Update(ctx context.Context, item *SaleLineItem) error

	// Delete removes the line item and restores the product's stock by the
	// line's quantity.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SalePaymentRepository persists sale payments. Payments have no update
// path; a wrong payment is deleted and re-entered.
type SalePaymentRepository interface {
	// FindByID finds a payment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*SalePayment, error)

	// FindBySale finds all payments for a sale, newest first
	FindBySale(ctx context.Context, saleID uuid.UUID) ([]SalePayment, error)

	// Create inserts a new payment
	Create(ctx context.Context, payment *SalePayment) error

	// Delete deletes a payment
	Delete(ctx context.Context, id uuid.UUID) error
}
