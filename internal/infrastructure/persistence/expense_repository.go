package persistence

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/finance"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormExpenseCategoryRepository implements ExpenseCategoryRepository using GORM
type GormExpenseCategoryRepository struct {
	db *gorm.DB
}

// NewGormExpenseCategoryRepository creates a new GormExpenseCategoryRepository
func NewGormExpenseCategoryRepository(db *gorm.DB) *GormExpenseCategoryRepository {
	return &GormExpenseCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormExpenseCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.ExpenseCategory, error) {
	var category finance.ExpenseCategory
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindByName finds a category by its exact name
func (r *GormExpenseCategoryRepository) FindByName(ctx context.Context, name string) (*finance.ExpenseCategory, error) {
	var category finance.ExpenseCategory
	if err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll finds all categories matching the filter
func (r *GormExpenseCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.ExpenseCategory, error) {
	var categories []finance.ExpenseCategory
	query := r.db.WithContext(ctx).Model(&finance.ExpenseCategory{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	orderBy := ValidateSortField(filter.OrderBy, ExpenseCategorySortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit())

	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// ListAll returns every category ordered by name, without pagination
func (r *GormExpenseCategoryRepository) ListAll(ctx context.Context) ([]finance.ExpenseCategory, error) {
	var categories []finance.ExpenseCategory
	err := r.db.WithContext(ctx).
		Model(&finance.ExpenseCategory{}).
		Order("name asc").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Save creates or updates a category
func (r *GormExpenseCategoryRepository) Save(ctx context.Context, category *finance.ExpenseCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete deletes a category. Expenses keep their rows with a nulled
// category reference.
func (r *GormExpenseCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.ExpenseCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts categories matching the filter
func (r *GormExpenseCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&finance.ExpenseCategory{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormExpenseCategoryRepository implements ExpenseCategoryRepository
var _ finance.ExpenseCategoryRepository = (*GormExpenseCategoryRepository)(nil)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID with its category preloaded
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	var expense finance.Expense
	if err := r.db.WithContext(ctx).Preload("Category").First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// FindAll finds all expenses matching the filter, newest first by default
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Expense, error) {
	var expenses []finance.Expense
	query := r.db.WithContext(ctx).Model(&finance.Expense{}).Preload("Category")
	if filter.Search != "" {
		query = query.Where("notes ILIKE ?", "%"+filter.Search+"%")
	}

	orderBy := ValidateSortField(filter.OrderBy, ExpenseSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit())

	if err := query.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// FindByCategory finds expenses under a single category
func (r *GormExpenseRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]finance.Expense, error) {
	var expenses []finance.Expense
	query := r.db.WithContext(ctx).Model(&finance.Expense{}).
		Preload("Category").
		Where("category_id = ?", categoryID)

	orderBy := ValidateSortField(filter.OrderBy, ExpenseSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit())

	if err := query.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	return r.db.WithContext(ctx).Omit("Category").Save(expense).Error
}

// Delete deletes an expense
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts expenses matching the filter
func (r *GormExpenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&finance.Expense{})
	if filter.Search != "" {
		query = query.Where("notes ILIKE ?", "%"+filter.Search+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormExpenseRepository implements ExpenseRepository
var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
