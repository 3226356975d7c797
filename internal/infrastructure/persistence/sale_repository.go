package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID, with customer, items and payments loaded
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	var sale trade.Sale
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Items.Product").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll finds all sales matching the filter, newest first by default
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Sale, error) {
	var sales []trade.Sale
	query := r.db.WithContext(ctx).Model(&trade.Sale{}).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		Preload("Payments")
	if filter.Search != "" {
		query = query.Where("notes ILIKE ?", "%"+filter.Search+"%")
	}

	orderBy := ValidateSortField(filter.OrderBy, SaleSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit())

	if err := query.Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Save creates or updates a sale header. Line items are written through
// SaleLineItemRepository so their stock adjustments stay atomic.
func (r *GormSaleRepository) Save(ctx context.Context, sale *trade.Sale) error {
	return r.db.WithContext(ctx).Omit("Customer", "Items", "Payments").Save(sale).Error
}

// Delete removes a sale with its items and payments. Stock consumed by the
// line items goes back to their products in the same transaction.
func (r *GormSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []trade.SaleLineItem
		if err := tx.Where("sale_id = ?", id).Find(&items).Error; err != nil {
			return err
		}
		for i := range items {
			if err := restoreStock(tx, items[i].ProductID, items[i].Quantity); err != nil {
				return err
			}
		}
		if err := tx.Delete(&trade.SaleLineItem{}, "sale_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&trade.SalePayment{}, "sale_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&trade.Sale{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts sales matching the filter
func (r *GormSaleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&trade.Sale{})
	if filter.Search != "" {
		query = query.Where("notes ILIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSaleRepository implements SaleRepository
var _ trade.SaleRepository = (*GormSaleRepository)(nil)

// GormSalePaymentRepository implements SalePaymentRepository using GORM
type GormSalePaymentRepository struct {
	db *gorm.DB
}

// NewGormSalePaymentRepository creates a new GormSalePaymentRepository
func NewGormSalePaymentRepository(db *gorm.DB) *GormSalePaymentRepository {
	return &GormSalePaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormSalePaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.SalePayment, error) {
	var payment trade.SalePayment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindBySale finds all payments for a sale, newest first
func (r *GormSalePaymentRepository) FindBySale(ctx context.Context, saleID uuid.UUID) ([]trade.SalePayment, error) {
	var payments []trade.SalePayment
	if err := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Create inserts a new payment
func (r *GormSalePaymentRepository) Create(ctx context.Context, payment *trade.SalePayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Delete deletes a payment
func (r *GormSalePaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trade.SalePayment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSalePaymentRepository implements SalePaymentRepository
var _ trade.SalePaymentRepository = (*GormSalePaymentRepository)(nil)
