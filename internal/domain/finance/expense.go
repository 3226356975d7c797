package finance

import (
	"strings"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory groups expenses for reporting. Names are unique.
type ExpenseCategory struct {
	shared.BaseEntity
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (ExpenseCategory) TableName() string {
	return "expense_categories"
}

// NewExpenseCategory creates a new expense category
func NewExpenseCategory(name, description string) (*ExpenseCategory, error) {
	if err := validateExpenseCategoryName(name); err != nil {
		return nil, err
	}

	return &ExpenseCategory{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: description,
	}, nil
}

// Update updates the category's name and description
func (c *ExpenseCategory) Update(name, description string) error {
	if err := validateExpenseCategoryName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Description = description
	c.Touch()

	return nil
}

// Expense is a single spent amount. CreatedAt is the expense timestamp and
// is immutable; historical expenses keep their monetary contribution to
// reports even after their category is deleted.
type Expense struct {
	shared.BaseEntity
	CategoryID *uuid.UUID       `gorm:"type:uuid;index"`
	Category   *ExpenseCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Amount     decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Notes      string           `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense records a new expense.
func NewExpense(categoryID *uuid.UUID, amount decimal.Decimal, notes string) (*Expense, error) {
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}

	return &Expense{
		BaseEntity: shared.NewBaseEntity(),
		CategoryID: categoryID,
		Amount:     amount,
		Notes:      notes,
	}, nil
}

// Update updates the expense's mutable fields. The expense timestamp stays
// fixed.
func (e *Expense) Update(categoryID *uuid.UUID, amount decimal.Decimal, notes string) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Expense amount must be positive")
	}

	e.CategoryID = categoryID
	e.Amount = amount
	e.Notes = notes
	e.Touch()

	return nil
}

func validateExpenseCategoryName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Expense category name is required")
	}
	if len(trimmed) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY_NAME", "Expense category name cannot exceed 100 characters")
	}
	return nil
}
