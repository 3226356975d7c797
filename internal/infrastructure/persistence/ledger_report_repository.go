package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/backoffice/backend/internal/domain/report"
	"github.com/backoffice/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormLedgerReportRepository implements LedgerReportRepository with
// aggregate queries over the ledger tables. All sums coalesce to zero so an
// empty interval yields exact decimal zero.
type GormLedgerReportRepository struct {
	db *gorm.DB
}

// NewGormLedgerReportRepository creates a new GormLedgerReportRepository
func NewGormLedgerReportRepository(db *gorm.DB) *GormLedgerReportRepository {
	return &GormLedgerReportRepository{db: db}
}

// SumSaleRevenue sums quantity*unit_price over sale line items whose parent
// sale falls inside [start, end]. The parent sale's timestamp drives the
// interval, not the line item's.
func (r *GormLedgerReportRepository) SumSaleRevenue(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&trade.SaleLineItem{}).
		Select("COALESCE(SUM(sale_line_items.quantity * sale_line_items.unit_price), 0)").
		Joins("JOIN sales ON sales.id = sale_line_items.sale_id").
		Where("sales.created_at BETWEEN ? AND ?", start, end).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumCompletedOrderPayments sums payments inside [start, end] whose parent
// order is delivered or completed. The payment's own timestamp drives the
// interval.
func (r *GormLedgerReportRepository) SumCompletedOrderPayments(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&trade.OrderPayment{}).
		Select("COALESCE(SUM(order_payments.amount), 0)").
		Joins("JOIN orders ON orders.id = order_payments.order_id").
		Where("order_payments.created_at BETWEEN ? AND ?", start, end).
		Where("orders.status IN ?", trade.CompletedOrderStatuses()).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumExpenses sums expenses inside [start, end]
func (r *GormLedgerReportRepository) SumExpenses(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Table("expenses").
		Select("COALESCE(SUM(amount), 0)").
		Where("created_at BETWEEN ? AND ?", start, end).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumExpensesByCategory sums expenses for one category inside [start, end]
func (r *GormLedgerReportRepository) SumExpensesByCategory(ctx context.Context, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Table("expenses").
		Select("COALESCE(SUM(amount), 0)").
		Where("category_id = ?", categoryID).
		Where("created_at BETWEEN ? AND ?", start, end).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// EarliestLedgerTime returns the oldest timestamp across orders, sales and
// expenses, or nil when all three tables are empty. The column is selected
// directly rather than through MIN() so drivers keep its time type.
func (r *GormLedgerReportRepository) EarliestLedgerTime(ctx context.Context) (*time.Time, error) {
	var earliest *time.Time
	for _, table := range []string{"orders", "sales", "expenses"} {
		var oldest sql.NullTime
		err := r.db.WithContext(ctx).
			Table(table).
			Select("created_at").
			Order("created_at ASC").
			Limit(1).
			Scan(&oldest).Error
		if err != nil {
			return nil, err
		}
		if !oldest.Valid {
			continue
		}
		ts := oldest.Time
		if earliest == nil || ts.Before(*earliest) {
			earliest = &ts
		}
	}
	return earliest, nil
}

// SumOutstandingOrderBalances sums positive order balances. An order's
// balance is its total amount minus recorded payments; overpaid orders
// contribute nothing.
func (r *GormLedgerReportRepository) SumOutstandingOrderBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(t.balance), 0) FROM (
			SELECT o.total_amount - COALESCE(SUM(p.amount), 0) AS balance
			FROM orders o
			LEFT JOIN order_payments p ON p.order_id = o.id
			GROUP BY o.id, o.total_amount
		) t WHERE t.balance > 0`).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// SumOutstandingSaleBalances sums positive sale balances. A sale's balance
// is its computed line-item total minus recorded payments; overpaid sales
// contribute nothing.
func (r *GormLedgerReportRepository) SumOutstandingSaleBalances(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(t.balance), 0) FROM (
			SELECT
				COALESCE((SELECT SUM(i.quantity * i.unit_price) FROM sale_line_items i WHERE i.sale_id = s.id), 0)
				- COALESCE((SELECT SUM(p.amount) FROM sale_payments p WHERE p.sale_id = s.id), 0) AS balance
			FROM sales s
		) t WHERE t.balance > 0`).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Ensure GormLedgerReportRepository implements LedgerReportRepository
var _ report.LedgerReportRepository = (*GormLedgerReportRepository)(nil)
