package finance

import (
	"context"
	"testing"

	"github.com/backoffice/backend/internal/domain/finance"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Expense, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]finance.Expense, error) {
	args := m.Called(ctx, categoryID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockExpenseCategoryRepository struct {
	mock.Mock
}

func (m *MockExpenseCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.ExpenseCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseCategoryRepository) FindByName(ctx context.Context, name string) (*finance.ExpenseCategory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.ExpenseCategory, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseCategoryRepository) ListAll(ctx context.Context) ([]finance.ExpenseCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseCategoryRepository) Save(ctx context.Context, category *finance.ExpenseCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockExpenseCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func TestExpenseServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("records an uncategorized expense", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		categories := new(MockExpenseCategoryRepository)
		service := NewExpenseService(expenses, categories)

		expenses.On("Save", ctx, mock.AnythingOfType("*finance.Expense")).Return(nil)

		resp, err := service.Create(ctx, &CreateExpenseRequest{
			Amount: decimal.RequireFromString("149.90"),
			Notes:  "packaging supplies",
		})
		require.NoError(t, err)
		assert.True(t, resp.Amount.Equal(decimal.RequireFromString("149.90")))
		assert.Nil(t, resp.CategoryID)
		assert.Empty(t, resp.CategoryName)
		expenses.AssertExpectations(t)
	})

	t.Run("resolves the category name", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		categories := new(MockExpenseCategoryRepository)
		service := NewExpenseService(expenses, categories)

		category, err := finance.NewExpenseCategory("Rent", "")
		require.NoError(t, err)
		categories.On("FindByID", ctx, category.ID).Return(category, nil)
		expenses.On("Save", ctx, mock.AnythingOfType("*finance.Expense")).Return(nil)

		resp, err := service.Create(ctx, &CreateExpenseRequest{
			CategoryID: &category.ID,
			Amount:     decimal.RequireFromString("8500.00"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Rent", resp.CategoryName)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		categories := new(MockExpenseCategoryRepository)
		service := NewExpenseService(expenses, categories)

		missing := uuid.New()
		categories.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, &CreateExpenseRequest{
			CategoryID: &missing,
			Amount:     decimal.RequireFromString("10.00"),
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		expenses.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		categories := new(MockExpenseCategoryRepository)
		service := NewExpenseService(expenses, categories)

		_, err := service.Create(ctx, &CreateExpenseRequest{Amount: decimal.Zero})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_AMOUNT", domainErr.Code)
	})
}

func TestExpenseServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps the original spend timestamp", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		categories := new(MockExpenseCategoryRepository)
		service := NewExpenseService(expenses, categories)

		expense, err := finance.NewExpense(nil, decimal.RequireFromString("50.00"), "")
		require.NoError(t, err)
		spentAt := expense.CreatedAt

		expenses.On("FindByID", ctx, expense.ID).Return(expense, nil)
		expenses.On("Save", ctx, expense).Return(nil)

		amount := decimal.RequireFromString("75.00")
		resp, err := service.Update(ctx, expense.ID, &UpdateExpenseRequest{Amount: &amount})
		require.NoError(t, err)
		assert.True(t, resp.Amount.Equal(amount))
		assert.Equal(t, spentAt, resp.SpentAt)
	})

	t.Run("clears the category", func(t *testing.T) {
		expenses := new(MockExpenseRepository)
		categories := new(MockExpenseCategoryRepository)
		service := NewExpenseService(expenses, categories)

		categoryID := uuid.New()
		expense, err := finance.NewExpense(&categoryID, decimal.RequireFromString("20.00"), "")
		require.NoError(t, err)

		expenses.On("FindByID", ctx, expense.ID).Return(expense, nil)
		expenses.On("Save", ctx, expense).Return(nil)

		resp, err := service.Update(ctx, expense.ID, &UpdateExpenseRequest{ClearCategory: true})
		require.NoError(t, err)
		assert.Nil(t, resp.CategoryID)
	})
}

func TestExpenseCategoryServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a duplicate name", func(t *testing.T) {
		categories := new(MockExpenseCategoryRepository)
		service := NewExpenseCategoryService(categories)

		existing, err := finance.NewExpenseCategory("Utilities", "")
		require.NoError(t, err)
		categories.On("FindByName", ctx, "Utilities").Return(existing, nil)

		_, err = service.Create(ctx, &CreateExpenseCategoryRequest{Name: "Utilities"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("creates when the name is free", func(t *testing.T) {
		categories := new(MockExpenseCategoryRepository)
		service := NewExpenseCategoryService(categories)

		categories.On("FindByName", ctx, "Fuel").Return(nil, shared.ErrNotFound)
		categories.On("Save", ctx, mock.AnythingOfType("*finance.ExpenseCategory")).Return(nil)

		resp, err := service.Create(ctx, &CreateExpenseCategoryRequest{Name: "Fuel"})
		require.NoError(t, err)
		assert.Equal(t, "Fuel", resp.Name)
	})
}
