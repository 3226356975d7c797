package finance

import (
	"context"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ExpenseCategoryRepository defines the interface for expense category persistence
type ExpenseCategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*ExpenseCategory, error)

	// FindByName finds a category by its unique name
	FindByName(ctx context.Context, name string) (*ExpenseCategory, error)

	// FindAll finds all categories, ordered by name
	FindAll(ctx context.Context, filter shared.Filter) ([]ExpenseCategory, error)

	// ListAll returns every category ordered by name, without pagination
	ListAll(ctx context.Context) ([]ExpenseCategory, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *ExpenseCategory) error

	// Delete deletes a category; expenses referencing it fall back to nil
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts categories matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	// FindByID finds an expense by its ID, with the category loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)

	// FindAll finds all expenses matching the filter, newest first by default
	FindAll(ctx context.Context, filter shared.Filter) ([]Expense, error)

	// FindByCategory finds all expenses in a category
	FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]Expense, error)

	// Save creates or updates an expense
	Save(ctx context.Context, expense *Expense) error

	// Delete deletes an expense
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts expenses matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
