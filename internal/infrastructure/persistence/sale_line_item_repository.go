package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleLineItemRepository implements SaleLineItemRepository using GORM.
// Every write couples the row change with a single atomic UPDATE on the
// product's stock counter, so concurrent sales of the same product never
// lose adjustments. Stock may go negative; the dashboard reports oversold
// products separately.
type GormSaleLineItemRepository struct {
	db *gorm.DB
}

// NewGormSaleLineItemRepository creates a new GormSaleLineItemRepository
func NewGormSaleLineItemRepository(db *gorm.DB) *GormSaleLineItemRepository {
	return &GormSaleLineItemRepository{db: db}
}

// FindByID finds a line item by its ID, with the product loaded
func (r *GormSaleLineItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SaleLineItem, error) {
	var item trade.SaleLineItem
	if err := r.db.WithContext(ctx).Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindBySale finds all line items for a sale
func (r *GormSaleLineItemRepository) FindBySale(ctx context.Context, saleID uuid.UUID) ([]trade.SaleLineItem, error) {
	var items []trade.SaleLineItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("sale_id = ?", saleID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts the line item and decrements the linked product's stock by
// the item's quantity when current stock is positive. A zero unit price is
// filled from the product's current sale price before the write.
func (r *GormSaleLineItemRepository) Create(ctx context.Context, item *trade.SaleLineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if item.ProductID != nil {
			if item.UnitPrice.IsZero() {
				var product catalog.Product
				if err := tx.First(&product, "id = ?", *item.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return shared.ErrNotFound
					}
					return err
				}
				item.ApplyDefaultPrice(&product)
			}
			// Guarded single-statement decrement; stock already at or
			// below zero is left untouched
			if err := tx.Model(&catalog.Product{}).
				Where("id = ? AND stock_quantity > 0", *item.ProductID).
				UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity)).
				Error; err != nil {
				return err
			}
		}
		return tx.Omit("Product").Create(item).Error
	})
}

// Update rewrites the line item and applies the quantity delta to the
// product's stock. A raised quantity consumes more stock, a lowered one
// restores it. The adjustment applies when stock is positive or the delta
// itself would increase stock.
func (r *GormSaleLineItemRepository) Update(ctx context.Context, item *trade.SaleLineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing trade.SaleLineItem
		if err := tx.First(&existing, "id = ?", item.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if item.ProductID != nil && existing.ProductID != nil && *item.ProductID == *existing.ProductID {
			delta := item.Quantity - existing.Quantity
			if delta != 0 {
				if err := tx.Model(&catalog.Product{}).
					Where("id = ? AND (stock_quantity > 0 OR ? < 0)", *item.ProductID, delta).
					UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", delta)).
					Error; err != nil {
					return err
				}
			}
		} else {
			// Product reference changed: give the old product its stock
			// back and charge the new one
			if err := restoreStock(tx, existing.ProductID, existing.Quantity); err != nil {
				return err
			}
			if item.ProductID != nil {
				if err := tx.Model(&catalog.Product{}).
					Where("id = ? AND stock_quantity > 0", *item.ProductID).
					UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity)).
					Error; err != nil {
					return err
				}
			}
		}

		return tx.Omit("Product").Save(item).Error
	})
}

// Delete removes the line item and restores the product's stock by the
// line's quantity
func (r *GormSaleLineItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing trade.SaleLineItem
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}
		if err := restoreStock(tx, existing.ProductID, existing.Quantity); err != nil {
			return err
		}
		return tx.Delete(&trade.SaleLineItem{}, "id = ?", id).Error
	})
}

// restoreStock adds quantity back to a product's stock. Deleted products
// are skipped silently.
func restoreStock(tx *gorm.DB, productID *uuid.UUID, quantity int) error {
	if productID == nil || quantity == 0 {
		return nil
	}
	return tx.Model(&catalog.Product{}).
		Where("id = ?", *productID).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", quantity)).
		Error
}

// Ensure GormSaleLineItemRepository implements SaleLineItemRepository
var _ trade.SaleLineItemRepository = (*GormSaleLineItemRepository)(nil)
