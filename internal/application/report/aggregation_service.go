package report

import (
	"context"
	"fmt"
	"time"

	"github.com/backoffice/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FinancialAggregator computes profit and expense figures over arbitrary
// closed date intervals by combining the three ledger sums. All arithmetic
// stays in decimal; callers convert to float only for presentation.
type FinancialAggregator struct {
	ledger report.LedgerReportRepository
	logger *zap.Logger
}

// NewFinancialAggregator creates a new financial aggregator
func NewFinancialAggregator(ledger report.LedgerReportRepository, logger *zap.Logger) *FinancialAggregator {
	return &FinancialAggregator{
		ledger: ledger,
		logger: logger,
	}
}

// ProfitBreakdown computes the full profit breakdown for [start, end]:
// sale revenue plus payments on delivered/completed orders, minus expenses.
// Intervals with no ledger rows yield exact zeros throughout.
func (a *FinancialAggregator) ProfitBreakdown(ctx context.Context, start, end time.Time) (*report.ProfitBreakdown, error) {
	revenue, err := a.ledger.SumSaleRevenue(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("sum sale revenue: %w", err)
	}

	orderPayments, err := a.ledger.SumCompletedOrderPayments(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("sum completed order payments: %w", err)
	}

	expenses, err := a.ledger.SumExpenses(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("sum expenses: %w", err)
	}

	return &report.ProfitBreakdown{
		PeriodStart:            start,
		PeriodEnd:              end,
		SaleRevenue:            revenue,
		CompletedOrderPayments: orderPayments,
		Expenses:               expenses,
		NetProfit:              revenue.Add(orderPayments).Sub(expenses),
	}, nil
}

// NetProfit computes net profit for [start, end].
func (a *FinancialAggregator) NetProfit(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	breakdown, err := a.ProfitBreakdown(ctx, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	return breakdown.NetProfit, nil
}

// GrossExpense computes total expenses for [start, end].
func (a *FinancialAggregator) GrossExpense(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	expenses, err := a.ledger.SumExpenses(ctx, start, end)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum expenses: %w", err)
	}
	return expenses, nil
}

// seriesOver evaluates a metric across buckets into an index-aligned series.
func (a *FinancialAggregator) seriesOver(ctx context.Context, buckets []Bucket, title string,
	metric func(ctx context.Context, start, end time.Time) (decimal.Decimal, error)) (TimeSeries, error) {

	series := TimeSeries{
		Labels: make([]string, 0, len(buckets)),
		Values: make([]float64, 0, len(buckets)),
		Title:  title,
	}
	for _, bucket := range buckets {
		amount, err := metric(ctx, bucket.Start, bucket.End)
		if err != nil {
			a.logger.Error("Bucket aggregation failed",
				zap.String("bucket", bucket.Label),
				zap.Time("start", bucket.Start),
				zap.Time("end", bucket.End),
				zap.Error(err))
			return TimeSeries{}, err
		}
		series.Labels = append(series.Labels, bucket.Label)
		series.Values = append(series.Values, amount.InexactFloat64())
	}
	return series, nil
}

// NetProfitSeries evaluates net profit across the buckets.
func (a *FinancialAggregator) NetProfitSeries(ctx context.Context, buckets []Bucket, title string) (TimeSeries, error) {
	return a.seriesOver(ctx, buckets, title, a.NetProfit)
}

// GrossExpenseSeries evaluates gross expenses across the buckets.
func (a *FinancialAggregator) GrossExpenseSeries(ctx context.Context, buckets []Bucket, title string) (TimeSeries, error) {
	return a.seriesOver(ctx, buckets, title, a.GrossExpense)
}
