package finance

import (
	"context"
	"errors"

	"github.com/backoffice/backend/internal/domain/finance"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ExpenseCategoryService handles expense category management
type ExpenseCategoryService struct {
	categoryRepo finance.ExpenseCategoryRepository
}

// NewExpenseCategoryService creates a new expense category service
func NewExpenseCategoryService(categoryRepo finance.ExpenseCategoryRepository) *ExpenseCategoryService {
	return &ExpenseCategoryService{categoryRepo: categoryRepo}
}

// Create registers a new expense category with a unique name
func (s *ExpenseCategoryService) Create(ctx context.Context, req *CreateExpenseCategoryRequest) (*ExpenseCategoryResponse, error) {
	existing, err := s.categoryRepo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "expense category with this name already exists")
	}

	category, err := finance.NewExpenseCategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return ToExpenseCategoryResponse(category), nil
}

// GetByID retrieves an expense category by its identifier
func (s *ExpenseCategoryService) GetByID(ctx context.Context, id uuid.UUID) (*ExpenseCategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToExpenseCategoryResponse(category), nil
}

// List retrieves expense categories with pagination
func (s *ExpenseCategoryService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ExpenseCategoryResponse], error) {
	categories, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.categoryRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(ToExpenseCategoryResponses(categories), total, filter.Page, filter.Limit())
	return &page, nil
}

// Update modifies an existing expense category
func (s *ExpenseCategoryService) Update(ctx context.Context, id uuid.UUID, req *UpdateExpenseCategoryRequest) (*ExpenseCategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := category.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := category.Description
	if req.Description != nil {
		description = *req.Description
	}

	if name != category.Name {
		existing, err := s.categoryRepo.FindByName(ctx, name)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "expense category with this name already exists")
		}
	}

	if err := category.Update(name, description); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return ToExpenseCategoryResponse(category), nil
}

// Delete removes an expense category. Expenses referencing it keep their
// amounts and fall back to an uncategorized display.
func (s *ExpenseCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, id)
}
