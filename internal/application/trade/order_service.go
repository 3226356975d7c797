package trade

import (
	"context"

	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// OrderService handles order and order payment operations
type OrderService struct {
	orderRepo    trade.OrderRepository
	paymentRepo  trade.OrderPaymentRepository
	customerRepo partner.CustomerRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	paymentRepo trade.OrderPaymentRepository,
	customerRepo partner.CustomerRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
	}
}

// Create creates a new pending order
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindByID(ctx, *req.CustomerID); err != nil {
			return nil, err
		}
	}

	order, err := trade.NewOrder(req.CustomerID, req.TotalAmount)
	if err != nil {
		return nil, err
	}
	if req.Notes != "" || req.DeliveryDate != nil {
		if err := order.Update(req.TotalAmount, req.Notes, req.DeliveryDate); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// GetByID returns an order with its payments and derived balance
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// List returns orders matching the filter
func (s *OrderService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[OrderResponse], error) {
	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToOrderResponses(orders), total, filter.Page, filter.Limit())
	return &page, nil
}

// ListByStatus returns orders in a given status
func (s *OrderService) ListByStatus(ctx context.Context, status trade.OrderStatus, filter shared.Filter) ([]OrderResponse, error) {
	if err := trade.ValidateOrderStatus(status); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindByStatus(ctx, status, filter)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// Update updates an order's total, notes and delivery date
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	totalAmount := order.TotalAmount
	if req.TotalAmount != nil {
		totalAmount = *req.TotalAmount
	}
	notes := order.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}
	deliveryDate := order.DeliveryDate
	if req.DeliveryDate != nil {
		deliveryDate = req.DeliveryDate
	}
	if err := order.Update(totalAmount, notes, deliveryDate); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// ChangeStatus moves an order through its lifecycle
func (s *OrderService) ChangeStatus(ctx context.Context, id uuid.UUID, req ChangeOrderStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.ChangeStatus(trade.OrderStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// Delete removes an order and its payments
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.orderRepo.Delete(ctx, id)
}

// AddPayment records a payment against an order. Payments are immutable;
// there is no update path.
func (s *OrderService) AddPayment(ctx context.Context, orderID uuid.UUID, req CreatePaymentRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	payment, err := trade.NewOrderPayment(order.ID, req.Amount, trade.PaymentMethod(req.Method), req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	// reload so the response reflects the new balance
	order, err = s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

// DeletePayment removes a mistaken payment row.
func (s *OrderService) DeletePayment(ctx context.Context, orderID, paymentID uuid.UUID) error {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment.OrderID != orderID {
		return shared.ErrNotFound
	}
	return s.paymentRepo.Delete(ctx, paymentID)
}
