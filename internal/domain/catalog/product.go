package catalog

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item with a tracked stock count.
// StockQuantity is adjusted exclusively through atomic store-side updates
// when sale line items are written; it may legitimately go negative when a
// sale records more units than are on hand.
type Product struct {
	shared.BaseEntity
	Name          string           `gorm:"type:varchar(200);not null;index"`
	CategoryID    *uuid.UUID       `gorm:"type:uuid;index"`
	Category      *Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Brand         string           `gorm:"type:varchar(100)"`
	ModelCode     string           `gorm:"type:varchar(100)"`
	StockQuantity int              `gorm:"not null;default:0"`
	CostPrice     *decimal.Decimal `gorm:"type:decimal(10,2)"`
	SalePrice     decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Notes         string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(name string, salePrice decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if salePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_SALE_PRICE", "Sale price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		SalePrice:  salePrice,
	}, nil
}

// Update updates the product's descriptive fields
func (p *Product) Update(name, brand, modelCode, notes string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if brand != "" && len(brand) > 100 {
		return shared.NewDomainError("INVALID_BRAND", "Brand cannot exceed 100 characters")
	}
	if modelCode != "" && len(modelCode) > 100 {
		return shared.NewDomainError("INVALID_MODEL_CODE", "Model code cannot exceed 100 characters")
	}

	p.Name = strings.TrimSpace(name)
	p.Brand = strings.TrimSpace(brand)
	p.ModelCode = strings.TrimSpace(modelCode)
	p.Notes = notes
	p.Touch()

	return nil
}

// SetCategory assigns the product to a category, nil clears it.
func (p *Product) SetCategory(categoryID *uuid.UUID) {
	p.CategoryID = categoryID
	p.Touch()
}

// SetPrices sets the cost and sale prices. Cost price is optional.
func (p *Product) SetPrices(costPrice *decimal.Decimal, salePrice decimal.Decimal) error {
	if costPrice != nil && costPrice.IsNegative() {
		return shared.NewDomainError("INVALID_COST_PRICE", "Cost price cannot be negative")
	}
	if salePrice.IsNegative() {
		return shared.NewDomainError("INVALID_SALE_PRICE", "Sale price cannot be negative")
	}

	p.CostPrice = costPrice
	p.SalePrice = salePrice
	p.Touch()

	return nil
}

// SetStockQuantity sets the stock count directly, for manual corrections.
// Sale-driven adjustments go through the line-item repository instead.
func (p *Product) SetStockQuantity(quantity int) {
	p.StockQuantity = quantity
	p.Touch()
}

// IsOutOfStock reports whether the product has no stock left.
func (p *Product) IsOutOfStock() bool {
	return p.StockQuantity <= 0
}

func validateProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name is required")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
