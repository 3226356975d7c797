package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/backoffice/backend/internal/domain/finance"
	"github.com/backoffice/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrderWithPayment(t *testing.T, db *gorm.DB, status trade.OrderStatus, total, paid string) *trade.Order {
	t.Helper()
	order, err := trade.NewOrder(nil, decimal.RequireFromString(total))
	require.NoError(t, err)
	if status != trade.OrderStatusPending {
		require.NoError(t, order.ChangeStatus(status))
	}
	require.NoError(t, db.Create(order).Error)

	if paid != "" {
		payment, err := trade.NewOrderPayment(order.ID, decimal.RequireFromString(paid), trade.PaymentMethodCash, "")
		require.NoError(t, err)
		require.NoError(t, db.Create(payment).Error)
	}
	return order
}

type saleLine struct {
	qty   int
	price string
}

func seedSaleWithItems(t *testing.T, db *gorm.DB, lines []saleLine, paid string) *trade.Sale {
	t.Helper()
	sale := seedSale(t, db)
	for _, line := range lines {
		item, err := trade.NewSaleLineItem(sale.ID, nil, line.qty, decimal.RequireFromString(line.price))
		require.NoError(t, err)
		require.NoError(t, db.Create(item).Error)
	}
	if paid != "" {
		payment, err := trade.NewSalePayment(sale.ID, decimal.RequireFromString(paid), trade.PaymentMethodCash, "")
		require.NoError(t, err)
		require.NoError(t, db.Create(payment).Error)
	}
	return sale
}

func wideInterval() (time.Time, time.Time) {
	return time.Now().Add(-24 * time.Hour), time.Now().Add(24 * time.Hour)
}

func TestSumSaleRevenue(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewGormLedgerReportRepository(db)
	start, end := wideInterval()

	t.Run("empty interval yields exact zero", func(t *testing.T) {
		total, err := repo.SumSaleRevenue(ctx, start, end)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("sums quantity times unit price", func(t *testing.T) {
		seedSaleWithItems(t, db, []saleLine{{2, "10.50"}, {1, "5.00"}}, "")
		seedSaleWithItems(t, db, []saleLine{{3, "4.00"}}, "")

		total, err := repo.SumSaleRevenue(ctx, start, end)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.RequireFromString("38.00")), "got %s", total)
	})

	t.Run("sales outside the interval are excluded", func(t *testing.T) {
		total, err := repo.SumSaleRevenue(ctx, start.Add(-48*time.Hour), start.Add(-24*time.Hour))
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}

func TestSumCompletedOrderPayments(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewGormLedgerReportRepository(db)
	start, end := wideInterval()

	seedOrderWithPayment(t, db, trade.OrderStatusDelivered, "500.00", "200.00")
	seedOrderWithPayment(t, db, trade.OrderStatusCompleted, "300.00", "300.00")
	// Payments on orders still in flight stay out of the profit figures
	seedOrderWithPayment(t, db, trade.OrderStatusPending, "400.00", "100.00")
	seedOrderWithPayment(t, db, trade.OrderStatusConfirmed, "250.00", "50.00")

	total, err := repo.SumCompletedOrderPayments(ctx, start, end)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("500.00")), "got %s", total)
}

func TestSumExpenses(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewGormLedgerReportRepository(db)
	start, end := wideInterval()

	category, err := finance.NewExpenseCategory("Rent", "")
	require.NoError(t, err)
	require.NoError(t, db.Create(category).Error)

	rent, err := finance.NewExpense(&category.ID, decimal.RequireFromString("1000.00"), "")
	require.NoError(t, err)
	require.NoError(t, db.Create(rent).Error)

	other, err := finance.NewExpense(nil, decimal.RequireFromString("250.50"), "")
	require.NoError(t, err)
	require.NoError(t, db.Create(other).Error)

	total, err := repo.SumExpenses(ctx, start, end)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("1250.50")), "got %s", total)

	byCategory, err := repo.SumExpensesByCategory(ctx, category.ID, start, end)
	require.NoError(t, err)
	assert.True(t, byCategory.Equal(decimal.RequireFromString("1000.00")), "got %s", byCategory)
}

func TestEarliestLedgerTime(t *testing.T) {
	ctx := context.Background()

	t.Run("nil when the ledger is empty", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewGormLedgerReportRepository(db)

		earliest, err := repo.EarliestLedgerTime(ctx)
		require.NoError(t, err)
		assert.Nil(t, earliest)
	})

	t.Run("oldest row across the three tables wins", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewGormLedgerReportRepository(db)

		expense, err := finance.NewExpense(nil, decimal.RequireFromString("10.00"), "")
		require.NoError(t, err)
		expense.CreatedAt = time.Date(2022, 3, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, db.Create(expense).Error)

		seedOrderWithPayment(t, db, trade.OrderStatusPending, "100.00", "")
		seedSale(t, db)

		earliest, err := repo.EarliestLedgerTime(ctx)
		require.NoError(t, err)
		require.NotNil(t, earliest)
		assert.Equal(t, 2022, earliest.UTC().Year())
	})
}

func TestOutstandingBalances(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewGormLedgerReportRepository(db)

	// 300 owed, 0 owed (overpaid ignored), and an unpaid 150
	seedOrderWithPayment(t, db, trade.OrderStatusDelivered, "500.00", "200.00")
	seedOrderWithPayment(t, db, trade.OrderStatusPending, "100.00", "150.00")
	seedOrderWithPayment(t, db, trade.OrderStatusConfirmed, "150.00", "")

	orderTotal, err := repo.SumOutstandingOrderBalances(ctx)
	require.NoError(t, err)
	assert.True(t, orderTotal.Equal(decimal.RequireFromString("450.00")), "got %s", orderTotal)

	// Sale owing 10, sale overpaid by 5, sale with no payments owing 12
	seedSaleWithItems(t, db, []saleLine{{2, "10.00"}, {1, "5.00"}}, "15.00")
	seedSaleWithItems(t, db, []saleLine{{1, "20.00"}}, "25.00")
	seedSaleWithItems(t, db, []saleLine{{3, "4.00"}}, "")

	saleTotal, err := repo.SumOutstandingSaleBalances(ctx)
	require.NoError(t, err)
	assert.True(t, saleTotal.Equal(decimal.RequireFromString("22.00")), "got %s", saleTotal)
}
