package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/trade"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID, with customer and payments loaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds all orders matching the filter, newest first by default
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Order, error) {
	var orders []trade.Order
	query := r.db.WithContext(ctx).Model(&trade.Order{}).
		Preload("Customer").
		Preload("Payments")
	if filter.Search != "" {
		query = query.Where("notes ILIKE ?", "%"+filter.Search+"%")
	}

	orderBy := ValidateSortField(filter.OrderBy, OrderSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit())

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByStatus finds orders in a given status
func (r *GormOrderRepository) FindByStatus(ctx context.Context, status trade.OrderStatus, filter shared.Filter) ([]trade.Order, error) {
	var orders []trade.Order
	query := r.db.WithContext(ctx).Model(&trade.Order{}).
		Preload("Customer").
		Preload("Payments").
		Where("status = ?", status)

	orderBy := ValidateSortField(filter.OrderBy, OrderSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit())

	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Save creates or updates an order header
func (r *GormOrderRepository) Save(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Omit("Customer", "Payments").Save(order).Error
}

// Delete deletes an order; its payments go with it via cascade
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&trade.OrderPayment{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&trade.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts orders matching the filter
func (r *GormOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&trade.Order{})
	if filter.Search != "" {
		query = query.Where("notes ILIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus counts orders in a given status
func (r *GormOrderRepository) CountByStatus(ctx context.Context, status trade.OrderStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trade.Order{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormOrderRepository implements OrderRepository
var _ trade.OrderRepository = (*GormOrderRepository)(nil)

// GormOrderPaymentRepository implements OrderPaymentRepository using GORM
type GormOrderPaymentRepository struct {
	db *gorm.DB
}

// NewGormOrderPaymentRepository creates a new GormOrderPaymentRepository
func NewGormOrderPaymentRepository(db *gorm.DB) *GormOrderPaymentRepository {
	return &GormOrderPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormOrderPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.OrderPayment, error) {
	var payment trade.OrderPayment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByOrder finds all payments for an order, newest first
func (r *GormOrderPaymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]trade.OrderPayment, error) {
	var payments []trade.OrderPayment
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Create inserts a new payment
func (r *GormOrderPaymentRepository) Create(ctx context.Context, payment *trade.OrderPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// Delete deletes a payment
func (r *GormOrderPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&trade.OrderPayment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormOrderPaymentRepository implements OrderPaymentRepository
var _ trade.OrderPaymentRepository = (*GormOrderPaymentRepository)(nil)
