package trade

import (
	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/partner"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale represents a completed counter sale. Its total is never stored:
// ComputedTotal and AmountDue are recomputed from the loaded line items and
// payments on every read.
type Sale struct {
	shared.BaseEntity
	CustomerID    *uuid.UUID        `gorm:"type:uuid;index"`
	Customer      *partner.Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
	PaymentMethod PaymentMethod     `gorm:"type:varchar(20);not null;default:'CASH'"`
	Notes         string            `gorm:"type:text"`
	Items         []SaleLineItem    `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	Payments      []SalePayment     `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a new sale. CreatedAt is the sale date and is never
// modified afterwards.
func NewSale(customerID *uuid.UUID, method PaymentMethod, notes string) (*Sale, error) {
	if err := ValidatePaymentMethod(method); err != nil {
		return nil, err
	}

	return &Sale{
		BaseEntity:    shared.NewBaseEntity(),
		CustomerID:    customerID,
		PaymentMethod: method,
		Notes:         notes,
	}, nil
}

// Update updates the sale's mutable fields. The sale date stays fixed.
func (s *Sale) Update(customerID *uuid.UUID, method PaymentMethod, notes string) error {
	if err := ValidatePaymentMethod(method); err != nil {
		return err
	}

	s.CustomerID = customerID
	s.PaymentMethod = method
	s.Notes = notes
	s.Touch()

	return nil
}

// ComputedTotal sums quantity times unit price over the loaded line items.
func (s *Sale) ComputedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// PaidTotal sums the loaded payments.
func (s *Sale) PaidTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// AmountDue returns the outstanding balance, computed total minus payments.
// May be negative when the sale is overpaid.
func (s *Sale) AmountDue() decimal.Decimal {
	return s.ComputedTotal().Sub(s.PaidTotal())
}

// SaleLineItem is one product position on a sale. Writing a line item
// adjusts the linked product's stock; the repository performs the row write
// and the stock adjustment in a single transaction.
type SaleLineItem struct {
	shared.BaseEntity
	SaleID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_sale_product,priority:1"`
	ProductID *uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_sale_product,priority:2"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	Quantity  int              `gorm:"not null;default:1"`
	UnitPrice decimal.Decimal  `gorm:"type:decimal(10,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (SaleLineItem) TableName() string {
	return "sale_line_items"
}

// NewSaleLineItem creates a line item for a sale.
func NewSaleLineItem(saleID uuid.UUID, productID *uuid.UUID, quantity int, unitPrice decimal.Decimal) (*SaleLineItem, error) {
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_UNIT_PRICE", "Unit price cannot be negative")
	}

	return &SaleLineItem{
		BaseEntity: shared.NewBaseEntity(),
		SaleID:     saleID,
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
	}, nil
}

// LineTotal returns quantity times unit price.
func (i *SaleLineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ApplyDefaultPrice fills the unit price from the product's sale price when
// the line carries no price of its own.
func (i *SaleLineItem) ApplyDefaultPrice(product *catalog.Product) {
	if product != nil && i.UnitPrice.IsZero() {
		i.UnitPrice = product.SalePrice
	}
}

// SalePayment records money received against a sale. Payments are immutable
// once created; corrections are new rows.
type SalePayment struct {
	shared.BaseEntity
	SaleID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Method PaymentMethod   `gorm:"type:varchar(20);not null;default:'CASH'"`
	Notes  string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (SalePayment) TableName() string {
	return "sale_payments"
}

// NewSalePayment creates a payment against a sale. CreatedAt is the payment
// timestamp.
func NewSalePayment(saleID uuid.UUID, amount decimal.Decimal, method PaymentMethod, notes string) (*SalePayment, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if err := ValidatePaymentMethod(method); err != nil {
		return nil, err
	}

	return &SalePayment{
		BaseEntity: shared.NewBaseEntity(),
		SaleID:     saleID,
		Amount:     amount,
		Method:     method,
		Notes:      notes,
	}, nil
}
