package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfitBreakdown is a read model for a single interval's profit figures.
// NetProfit = SaleRevenue + CompletedOrderPayments - Expenses.
type ProfitBreakdown struct {
	PeriodStart            time.Time       `json:"period_start"`
	PeriodEnd              time.Time       `json:"period_end"`
	SaleRevenue            decimal.Decimal `json:"sale_revenue"`
	CompletedOrderPayments decimal.Decimal `json:"completed_order_payments"`
	Expenses               decimal.Decimal `json:"expenses"`
	NetProfit              decimal.Decimal `json:"net_profit"`
}

// OutstandingBalances is a read model for receivables still owed, orders and
// sales kept separate. Only positive per-record balances contribute.
type OutstandingBalances struct {
	Orders decimal.Decimal `json:"orders"`
	Sales  decimal.Decimal `json:"sales"`
}

// LedgerReportRepository aggregates over the ledger tables (sales, order
// payments, expenses). Implementations must sum at the store with a zero
// coalesce: an interval with no matching rows yields exact decimal zero,
// never a null.
type LedgerReportRepository interface {
	// SumSaleRevenue sums quantity*unit_price over sale line items whose
	// parent sale falls inside [start, end].
	SumSaleRevenue(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// SumCompletedOrderPayments sums payments inside [start, end] whose
	// parent order is delivered or completed.
	SumCompletedOrderPayments(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// SumExpenses sums expenses inside [start, end].
	SumExpenses(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// SumExpensesByCategory sums expenses for one category inside [start, end].
	SumExpensesByCategory(ctx context.Context, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// EarliestLedgerTime returns the oldest timestamp across orders, sales
	// and expenses, or nil when all three tables are empty.
	EarliestLedgerTime(ctx context.Context) (*time.Time, error)

	// SumOutstandingOrderBalances sums positive order balances
	// (total_amount minus payments); overpaid orders contribute nothing.
	SumOutstandingOrderBalances(ctx context.Context) (decimal.Decimal, error)

	// SumOutstandingSaleBalances sums positive sale balances (computed
	// line-item total minus payments); overpaid sales contribute nothing.
	SumOutstandingSaleBalances(ctx context.Context) (decimal.Decimal, error)
}
