package trade

import (
	"context"

	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// SaleService handles sales, their line items and payments. Line item
// writes go through the line-item repository, which couples each row write
// with an atomic stock adjustment on the linked product.
type SaleService struct {
	saleRepo     trade.SaleRepository
	itemRepo     trade.SaleLineItemRepository
	paymentRepo  trade.SalePaymentRepository
	customerRepo partner.CustomerRepository
}

// NewSaleService creates a new SaleService
func NewSaleService(
	saleRepo trade.SaleRepository,
	itemRepo trade.SaleLineItemRepository,
	paymentRepo trade.SalePaymentRepository,
	customerRepo partner.CustomerRepository,
) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		itemRepo:     itemRepo,
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
	}
}

// Create records a new sale with its initial line items. Each line item
// write adjusts the linked product's stock.
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindByID(ctx, *req.CustomerID); err != nil {
			return nil, err
		}
	}

	sale, err := trade.NewSale(req.CustomerID, trade.PaymentMethod(req.PaymentMethod), req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	for _, itemReq := range req.Items {
		item, err := trade.NewSaleLineItem(sale.ID, itemReq.ProductID, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			return nil, err
		}
		if err := s.itemRepo.Create(ctx, item); err != nil {
			return nil, err
		}
	}

	return s.GetByID(ctx, sale.ID)
}

// GetByID returns a sale with its items, payments and derived totals
func (s *SaleService) GetByID(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

// List returns sales matching the filter
func (s *SaleService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[SaleResponse], error) {
	sales, err := s.saleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.saleRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToSaleResponses(sales), total, filter.Page, filter.Limit())
	return &page, nil
}

// Update updates a sale's header fields. Line items have their own
// operations so stock stays consistent.
func (s *SaleService) Update(ctx context.Context, id uuid.UUID, req UpdateSaleRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customerID := sale.CustomerID
	if req.ClearCustomer {
		customerID = nil
	} else if req.CustomerID != nil {
		if _, err := s.customerRepo.FindByID(ctx, *req.CustomerID); err != nil {
			return nil, err
		}
		customerID = req.CustomerID
	}
	method := sale.PaymentMethod
	if req.PaymentMethod != nil {
		method = trade.PaymentMethod(*req.PaymentMethod)
	}
	notes := sale.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}
	if err := sale.Update(customerID, method, notes); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

// Delete removes a sale with its items and payments; stock consumed by the
// line items is restored in the same transaction.
func (s *SaleService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.saleRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.saleRepo.Delete(ctx, id)
}

// AddItem adds a line item to an existing sale, decrementing stock.
func (s *SaleService) AddItem(ctx context.Context, saleID uuid.UUID, req CreateSaleItemRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	item, err := trade.NewSaleLineItem(sale.ID, req.ProductID, req.Quantity, req.UnitPrice)
	if err != nil {
		return nil, err
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, saleID)
}

// UpdateItem changes a line item's quantity or price. The stock delta is
// the difference between the old and new quantity.
func (s *SaleService) UpdateItem(ctx context.Context, saleID, itemID uuid.UUID, req UpdateSaleItemRequest) (*SaleResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.SaleID != saleID {
		return nil, shared.ErrNotFound
	}

	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
		}
		item.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
		}
		item.UnitPrice = *req.UnitPrice
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, saleID)
}

// RemoveItem deletes a line item, restoring the product's stock.
func (s *SaleService) RemoveItem(ctx context.Context, saleID, itemID uuid.UUID) (*SaleResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.SaleID != saleID {
		return nil, shared.ErrNotFound
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, saleID)
}

// AddPayment records a payment against a sale. Payments are immutable;
// there is no update path.
func (s *SaleService) AddPayment(ctx context.Context, saleID uuid.UUID, req CreatePaymentRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	payment, err := trade.NewSalePayment(sale.ID, req.Amount, trade.PaymentMethod(req.Method), req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, saleID)
}

// DeletePayment removes a mistaken payment row.
func (s *SaleService) DeletePayment(ctx context.Context, saleID, paymentID uuid.UUID) error {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment.SaleID != saleID {
		return shared.ErrNotFound
	}
	return s.paymentRepo.Delete(ctx, paymentID)
}
