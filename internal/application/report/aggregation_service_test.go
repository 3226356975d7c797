package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockLedgerReportRepository is a mock implementation of LedgerReportRepository
type MockLedgerReportRepository struct {
	mock.Mock
}

func (m *MockLedgerReportRepository) SumSaleRevenue(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerReportRepository) SumCompletedOrderPayments(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerReportRepository) SumExpenses(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerReportRepository) SumExpensesByCategory(ctx context.Context, categoryID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, categoryID, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerReportRepository) EarliestLedgerTime(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockLedgerReportRepository) SumOutstandingOrderBalances(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerReportRepository) SumOutstandingSaleBalances(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func TestFinancialAggregatorNetProfit(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, istanbul)
	end := time.Date(2025, 8, 31, 23, 59, 59, 0, istanbul)

	t.Run("combines the three ledger sums", func(t *testing.T) {
		ledger := new(MockLedgerReportRepository)
		ledger.On("SumSaleRevenue", ctx, start, end).Return(decimal.NewFromFloat(1200.50), nil)
		ledger.On("SumCompletedOrderPayments", ctx, start, end).Return(decimal.NewFromFloat(800.00), nil)
		ledger.On("SumExpenses", ctx, start, end).Return(decimal.NewFromFloat(450.25), nil)

		aggregator := NewFinancialAggregator(ledger, zap.NewNop())
		profit, err := aggregator.NetProfit(ctx, start, end)

		require.NoError(t, err)
		assert.True(t, profit.Equal(decimal.NewFromFloat(1550.25)), "net profit = %s", profit)
		ledger.AssertExpectations(t)
	})

	t.Run("empty interval yields exact zero", func(t *testing.T) {
		ledger := new(MockLedgerReportRepository)
		ledger.On("SumSaleRevenue", ctx, start, end).Return(decimal.Zero, nil)
		ledger.On("SumCompletedOrderPayments", ctx, start, end).Return(decimal.Zero, nil)
		ledger.On("SumExpenses", ctx, start, end).Return(decimal.Zero, nil)

		aggregator := NewFinancialAggregator(ledger, zap.NewNop())

		profit, err := aggregator.NetProfit(ctx, start, end)
		require.NoError(t, err)
		assert.True(t, profit.Equal(decimal.Zero))

		expense, err := aggregator.GrossExpense(ctx, start, end)
		require.NoError(t, err)
		assert.True(t, expense.Equal(decimal.Zero))
	})

	t.Run("net profit can be negative", func(t *testing.T) {
		ledger := new(MockLedgerReportRepository)
		ledger.On("SumSaleRevenue", ctx, start, end).Return(decimal.NewFromInt(100), nil)
		ledger.On("SumCompletedOrderPayments", ctx, start, end).Return(decimal.Zero, nil)
		ledger.On("SumExpenses", ctx, start, end).Return(decimal.NewFromInt(250), nil)

		aggregator := NewFinancialAggregator(ledger, zap.NewNop())
		profit, err := aggregator.NetProfit(ctx, start, end)

		require.NoError(t, err)
		assert.True(t, profit.Equal(decimal.NewFromInt(-150)))
	})

	t.Run("surfaces query errors without retrying", func(t *testing.T) {
		ledger := new(MockLedgerReportRepository)
		ledger.On("SumSaleRevenue", ctx, start, end).Return(decimal.Zero, errors.New("connection reset"))

		aggregator := NewFinancialAggregator(ledger, zap.NewNop())
		_, err := aggregator.NetProfit(ctx, start, end)

		assert.Error(t, err)
		ledger.AssertNumberOfCalls(t, "SumSaleRevenue", 1)
	})
}

func TestFinancialAggregatorProfitBreakdown(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, istanbul)
	end := time.Date(2025, 8, 31, 23, 59, 59, 0, istanbul)

	ledger := new(MockLedgerReportRepository)
	ledger.On("SumSaleRevenue", ctx, start, end).Return(decimal.NewFromInt(300), nil)
	ledger.On("SumCompletedOrderPayments", ctx, start, end).Return(decimal.NewFromInt(200), nil)
	ledger.On("SumExpenses", ctx, start, end).Return(decimal.NewFromInt(150), nil)

	aggregator := NewFinancialAggregator(ledger, zap.NewNop())
	breakdown, err := aggregator.ProfitBreakdown(ctx, start, end)

	require.NoError(t, err)
	assert.True(t, breakdown.SaleRevenue.Equal(decimal.NewFromInt(300)))
	assert.True(t, breakdown.CompletedOrderPayments.Equal(decimal.NewFromInt(200)))
	assert.True(t, breakdown.Expenses.Equal(decimal.NewFromInt(150)))
	assert.True(t, breakdown.NetProfit.Equal(decimal.NewFromInt(350)))
	assert.True(t, breakdown.PeriodStart.Equal(start))
	assert.True(t, breakdown.PeriodEnd.Equal(end))
}

func TestNetProfitSeries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 8, 13, 9, 0, 0, 0, istanbul)
	buckets := WeeklyBuckets(now, LocaleFor("tr"))

	ledger := new(MockLedgerReportRepository)
	ledger.On("SumSaleRevenue", ctx, mock.Anything, mock.Anything).Return(decimal.NewFromInt(10), nil)
	ledger.On("SumCompletedOrderPayments", ctx, mock.Anything, mock.Anything).Return(decimal.NewFromInt(5), nil)
	ledger.On("SumExpenses", ctx, mock.Anything, mock.Anything).Return(decimal.NewFromInt(3), nil)

	aggregator := NewFinancialAggregator(ledger, zap.NewNop())
	series, err := aggregator.NetProfitSeries(ctx, buckets, "Haftalık Net Kazanç")

	require.NoError(t, err)
	assert.Equal(t, "Haftalık Net Kazanç", series.Title)
	require.Len(t, series.Labels, 7)
	require.Len(t, series.Values, 7)
	for _, v := range series.Values {
		assert.InDelta(t, 12.0, v, 0.0001)
	}
}
