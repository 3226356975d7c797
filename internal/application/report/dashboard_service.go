package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/finance"
	"github.com/backoffice/backend/internal/domain/report"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/domain/trade"
	"go.uber.org/zap"
)

// TimeSeries is one chart on the dashboard. Labels and Values are always
// the same length and index-aligned.
type TimeSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Title  string    `json:"title"`
}

// OrderStatusCounts reports how many orders sit in the two states the
// dashboard watches.
type OrderStatusCounts struct {
	InProduction     int64 `json:"in_production"`      // CONFIRMED orders
	ReadyForDelivery int64 `json:"ready_for_delivery"` // READY orders
}

// MetricSeries groups the six report windows for one metric.
type MetricSeries struct {
	Weekly      TimeSeries `json:"weekly"`
	Monthly     TimeSeries `json:"monthly"`
	ThreeMonth  TimeSeries `json:"three_month"`
	SixMonth    TimeSeries `json:"six_month"`
	TwelveMonth TimeSeries `json:"twelve_month"`
	AllTime     TimeSeries `json:"all_time"`
}

// ExpenseTableRow is one month of the category breakdown table. Totals is
// keyed by category name and always carries every known category.
type ExpenseTableRow struct {
	Month  string             `json:"month"` // sortable YYYY-MM key
	Totals map[string]float64 `json:"totals"`
}

// ExpenseTable is the trailing six month expense breakdown, months oldest
// first, one column per known expense category.
type ExpenseTable struct {
	Categories []string          `json:"categories"`
	Rows       []ExpenseTableRow `json:"rows"`
}

// OutstandingTotals carries still-owed balances, orders and sales separate.
// Each is a sum of positive per-record balances only.
type OutstandingTotals struct {
	Orders float64 `json:"orders"`
	Sales  float64 `json:"sales"`
}

// StockAlerts reports products needing attention. When no stock settings
// row exists Threshold is zero and LowStock is an explicit zero count.
type StockAlerts struct {
	OutOfStock int64 `json:"out_of_stock"`
	LowStock   int64 `json:"low_stock"`
	Threshold  int   `json:"threshold"`
}

// Dashboard is the full report payload assembled for one render.
type Dashboard struct {
	GeneratedAt        time.Time         `json:"generated_at"`
	OrderCounts        OrderStatusCounts `json:"order_counts"`
	NetProfit          MetricSeries      `json:"net_profit"`
	Expenses           MetricSeries      `json:"expenses"`
	ExpensesByCategory ExpenseTable      `json:"expenses_by_category"`
	Outstanding        OutstandingTotals `json:"outstanding"`
	Stock              StockAlerts       `json:"stock"`
}

// DashboardCache caches an assembled dashboard for a short period so
// repeated renders skip the aggregation queries.
type DashboardCache interface {
	Get(ctx context.Context) (*Dashboard, bool)
	Set(ctx context.Context, dashboard *Dashboard)
}

// DashboardService assembles the management dashboard from the bucket
// generator and the financial aggregator.
type DashboardService struct {
	aggregator    *FinancialAggregator
	ledger        report.LedgerReportRepository
	orders        trade.OrderRepository
	products      catalog.ProductRepository
	stockSettings catalog.StockSettingsRepository
	categories    finance.ExpenseCategoryRepository
	cache         DashboardCache
	locale        Locale
	location      *time.Location
	now           func() time.Time
	logger        *zap.Logger
}

// NewDashboardService creates a new dashboard service. The clock is
// injectable for tests; pass nil to use time.Now.
func NewDashboardService(
	aggregator *FinancialAggregator,
	ledger report.LedgerReportRepository,
	orders trade.OrderRepository,
	products catalog.ProductRepository,
	stockSettings catalog.StockSettingsRepository,
	categories finance.ExpenseCategoryRepository,
	cache DashboardCache,
	locale Locale,
	location *time.Location,
	now func() time.Time,
	logger *zap.Logger,
) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{
		aggregator:    aggregator,
		ledger:        ledger,
		orders:        orders,
		products:      products,
		stockSettings: stockSettings,
		categories:    categories,
		cache:         cache,
		locale:        locale,
		location:      location,
		now:           now,
		logger:        logger,
	}
}

// BuildDashboard assembles the full dashboard payload, serving a cached
// copy when one is fresh enough.
func (s *DashboardService) BuildDashboard(ctx context.Context) (*Dashboard, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	now := s.now().In(s.location)

	orderCounts, err := s.orderStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	netProfit, expenses, err := s.metricSeries(ctx, now)
	if err != nil {
		return nil, err
	}

	expenseTable, err := s.expenseTable(ctx, now)
	if err != nil {
		return nil, err
	}

	outstanding, err := s.outstandingTotals(ctx)
	if err != nil {
		return nil, err
	}

	stock, err := s.stockAlerts(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		GeneratedAt:        now,
		OrderCounts:        orderCounts,
		NetProfit:          netProfit,
		Expenses:           expenses,
		ExpensesByCategory: expenseTable,
		Outstanding:        outstanding,
		Stock:              stock,
	}

	if s.cache != nil {
		s.cache.Set(ctx, dashboard)
	}
	return dashboard, nil
}

func (s *DashboardService) orderStatusCounts(ctx context.Context) (OrderStatusCounts, error) {
	inProduction, err := s.orders.CountByStatus(ctx, trade.OrderStatusConfirmed)
	if err != nil {
		return OrderStatusCounts{}, fmt.Errorf("count confirmed orders: %w", err)
	}
	ready, err := s.orders.CountByStatus(ctx, trade.OrderStatusReady)
	if err != nil {
		return OrderStatusCounts{}, fmt.Errorf("count ready orders: %w", err)
	}
	return OrderStatusCounts{InProduction: inProduction, ReadyForDelivery: ready}, nil
}

// metricSeries runs the six report windows through the aggregator for both
// metrics, twelve series in total.
func (s *DashboardService) metricSeries(ctx context.Context, now time.Time) (MetricSeries, MetricSeries, error) {
	earliest, err := s.ledger.EarliestLedgerTime(ctx)
	if err != nil {
		return MetricSeries{}, MetricSeries{}, fmt.Errorf("earliest ledger time: %w", err)
	}

	windows := []struct {
		buckets      []Bucket
		profitTitle  string
		expenseTitle string
		profit       *TimeSeries
		expense      *TimeSeries
	}{
		{WeeklyBuckets(now, s.locale), TitleWeeklyNetProfit, TitleWeeklyExpenses, nil, nil},
		{MonthlyBuckets(now), TitleMonthlyNetProfit, TitleMonthlyExpenses, nil, nil},
		{TrailingMonthBuckets(now, 3, s.locale), TitleThreeMonthNetProfit, TitleThreeMonthExpenses, nil, nil},
		{TrailingMonthBuckets(now, 6, s.locale), TitleSixMonthNetProfit, TitleSixMonthExpenses, nil, nil},
		{TrailingMonthBuckets(now, 12, s.locale), TitleTwelveMonthNetProfit, TitleTwelveMonthExpenses, nil, nil},
		{YearlyBuckets(now, earliest), TitleAllTimeNetProfit, TitleAllTimeExpenses, nil, nil},
	}

	var profit, expense MetricSeries
	profitSlots := []*TimeSeries{&profit.Weekly, &profit.Monthly, &profit.ThreeMonth, &profit.SixMonth, &profit.TwelveMonth, &profit.AllTime}
	expenseSlots := []*TimeSeries{&expense.Weekly, &expense.Monthly, &expense.ThreeMonth, &expense.SixMonth, &expense.TwelveMonth, &expense.AllTime}

	for i, window := range windows {
		p, err := s.aggregator.NetProfitSeries(ctx, window.buckets, s.locale.Title(window.profitTitle))
		if err != nil {
			return MetricSeries{}, MetricSeries{}, err
		}
		e, err := s.aggregator.GrossExpenseSeries(ctx, window.buckets, s.locale.Title(window.expenseTitle))
		if err != nil {
			return MetricSeries{}, MetricSeries{}, err
		}
		*profitSlots[i] = p
		*expenseSlots[i] = e
	}

	return profit, expense, nil
}

// expenseTable builds the trailing six month category breakdown. Every
// known category appears in every row, absent spend as exact zero.
func (s *DashboardService) expenseTable(ctx context.Context, now time.Time) (ExpenseTable, error) {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return ExpenseTable{}, fmt.Errorf("list expense categories: %w", err)
	}

	table := ExpenseTable{
		Categories: make([]string, 0, len(categories)),
		Rows:       make([]ExpenseTableRow, 0, 6),
	}
	for _, category := range categories {
		table.Categories = append(table.Categories, category.Name)
	}

	for _, bucket := range MonthKeyBuckets(now, 6) {
		row := ExpenseTableRow{
			Month:  bucket.Label,
			Totals: make(map[string]float64, len(categories)),
		}
		for _, category := range categories {
			amount, err := s.ledger.SumExpensesByCategory(ctx, category.ID, bucket.Start, bucket.End)
			if err != nil {
				return ExpenseTable{}, fmt.Errorf("sum expenses for category %s: %w", category.Name, err)
			}
			row.Totals[category.Name] = amount.InexactFloat64()
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func (s *DashboardService) outstandingTotals(ctx context.Context) (OutstandingTotals, error) {
	orders, err := s.ledger.SumOutstandingOrderBalances(ctx)
	if err != nil {
		return OutstandingTotals{}, fmt.Errorf("sum outstanding order balances: %w", err)
	}
	sales, err := s.ledger.SumOutstandingSaleBalances(ctx)
	if err != nil {
		return OutstandingTotals{}, fmt.Errorf("sum outstanding sale balances: %w", err)
	}
	return OutstandingTotals{
		Orders: orders.InexactFloat64(),
		Sales:  sales.InexactFloat64(),
	}, nil
}

// stockAlerts counts zero-stock products and, when a threshold is
// configured, products at or below tier 1. A missing settings row degrades
// to zero threshold and zero low-stock count rather than an error.
func (s *DashboardService) stockAlerts(ctx context.Context) (StockAlerts, error) {
	outOfStock, err := s.products.CountOutOfStock(ctx)
	if err != nil {
		return StockAlerts{}, fmt.Errorf("count out-of-stock products: %w", err)
	}

	alerts := StockAlerts{OutOfStock: outOfStock}

	settings, err := s.stockSettings.Get(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Debug("Stock settings not configured, skipping low-stock alert")
			return alerts, nil
		}
		return StockAlerts{}, fmt.Errorf("load stock settings: %w", err)
	}

	alerts.Threshold = settings.LowStockTier1
	lowStock, err := s.products.CountLowStock(ctx, settings.LowStockTier1)
	if err != nil {
		return StockAlerts{}, fmt.Errorf("count low-stock products: %w", err)
	}
	alerts.LowStock = lowStock

	return alerts, nil
}
