package finance

import (
	"context"

	"github.com/backoffice/backend/internal/domain/finance"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ExpenseService handles expense recording and maintenance
type ExpenseService struct {
	expenseRepo  finance.ExpenseRepository
	categoryRepo finance.ExpenseCategoryRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo finance.ExpenseRepository, categoryRepo finance.ExpenseCategoryRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, categoryRepo: categoryRepo}
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, req *CreateExpenseRequest) (*ExpenseResponse, error) {
	var category *finance.ExpenseCategory
	if req.CategoryID != nil {
		found, err := s.categoryRepo.FindByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		category = found
	}

	expense, err := finance.NewExpense(req.CategoryID, req.Amount, req.Notes)
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}
	expense.Category = category
	return ToExpenseResponse(expense), nil
}

// GetByID retrieves an expense by its identifier
func (s *ExpenseService) GetByID(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToExpenseResponse(expense), nil
}

// List retrieves expenses with pagination
func (s *ExpenseService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ExpenseResponse], error) {
	expenses, err := s.expenseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.expenseRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(ToExpenseResponses(expenses), total, filter.Page, filter.Limit())
	return &page, nil
}

// ListByCategory retrieves expenses under a single category
func (s *ExpenseService) ListByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) (*shared.Paginated[ExpenseResponse], error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.FindByCategory(ctx, categoryID, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(ToExpenseResponses(expenses), int64(len(expenses)), filter.Page, filter.Limit())
	return &page, nil
}

// Update modifies an existing expense. The original spend timestamp is
// preserved so past reporting periods stay stable.
func (s *ExpenseService) Update(ctx context.Context, id uuid.UUID, req *UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	categoryID := expense.CategoryID
	if req.ClearCategory {
		categoryID = nil
	} else if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		categoryID = req.CategoryID
	}

	amount := expense.Amount
	if req.Amount != nil {
		amount = *req.Amount
	}
	notes := expense.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}

	if err := expense.Update(categoryID, amount, notes); err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.expenseRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, id)
}
