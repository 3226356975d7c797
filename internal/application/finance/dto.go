package finance

import (
	"time"

	"github.com/backoffice/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateExpenseCategoryRequest represents a request to create an expense category
type CreateExpenseCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateExpenseCategoryRequest represents a request to update an expense category
type UpdateExpenseCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// ExpenseCategoryResponse represents an expense category in API responses
type ExpenseCategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToExpenseCategoryResponse converts a category entity to a response DTO
func ToExpenseCategoryResponse(category *finance.ExpenseCategory) *ExpenseCategoryResponse {
	return &ExpenseCategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// ToExpenseCategoryResponses converts a slice of category entities
func ToExpenseCategoryResponses(categories []finance.ExpenseCategory) []ExpenseCategoryResponse {
	responses := make([]ExpenseCategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *ToExpenseCategoryResponse(&categories[i]))
	}
	return responses
}

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	CategoryID *uuid.UUID      `json:"category_id"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Notes      string          `json:"notes"`
}

// UpdateExpenseRequest represents a request to update an expense. The
// expense timestamp is immutable and not part of the request.
type UpdateExpenseRequest struct {
	CategoryID    *uuid.UUID       `json:"category_id"`
	ClearCategory bool             `json:"clear_category"`
	Amount        *decimal.Decimal `json:"amount"`
	Notes         *string          `json:"notes"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID           uuid.UUID       `json:"id"`
	CategoryID   *uuid.UUID      `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	Notes        string          `json:"notes"`
	SpentAt      time.Time       `json:"spent_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToExpenseResponse converts an expense entity to a response DTO. A deleted
// category shows a placeholder name while the amount keeps counting toward
// reports.
func ToExpenseResponse(expense *finance.Expense) *ExpenseResponse {
	categoryName := ""
	if expense.CategoryID != nil {
		categoryName = "(deleted category)"
	}
	if expense.Category != nil {
		categoryName = expense.Category.Name
	}
	return &ExpenseResponse{
		ID:           expense.ID,
		CategoryID:   expense.CategoryID,
		CategoryName: categoryName,
		Amount:       expense.Amount,
		Notes:        expense.Notes,
		SpentAt:      expense.CreatedAt,
		UpdatedAt:    expense.UpdatedAt,
	}
}

// ToExpenseResponses converts a slice of expense entities
func ToExpenseResponses(expenses []finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, *ToExpenseResponse(&expenses[i]))
	}
	return responses
}
