package handler

import (
	financeapp "github.com/backoffice/backend/internal/application/finance"
	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles expense and expense category API endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService  *financeapp.ExpenseService
	categoryService *financeapp.ExpenseCategoryService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *financeapp.ExpenseService, categoryService *financeapp.ExpenseCategoryService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService:  expenseService,
		categoryService: categoryService,
	}
}

// RegisterRoutes registers expense routes on the given group
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.Create)
		expenses.GET("", h.List)
		expenses.GET("/:id", h.GetByID)
		expenses.PUT("/:id", h.Update)
		expenses.DELETE("/:id", h.Delete)
	}

	categories := rg.Group("/expense-categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategoryByID)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
		categories.GET("/:id/expenses", h.ListByCategory)
	}
}

// Create records a new expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req financeapp.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, expense)
}

// GetByID returns a single expense
func (h *ExpenseHandler) GetByID(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	expense, err := h.expenseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, expense)
}

// List returns a paginated expense list
func (h *ExpenseHandler) List(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	page, err := h.expenseService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Paginated(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update modifies an expense's category, amount or notes
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req financeapp.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	expense, err := h.expenseService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, expense)
}

// Delete removes an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateCategory adds a new expense category
func (h *ExpenseHandler) CreateCategory(c *gin.Context) {
	var req financeapp.CreateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, category)
}

// GetCategoryByID returns a single expense category
func (h *ExpenseHandler) GetCategoryByID(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, category)
}

// ListCategories returns a paginated expense category list
func (h *ExpenseHandler) ListCategories(c *gin.Context) {
	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	page, err := h.categoryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Paginated(c, page.Items, page.Total, page.Page, page.PageSize)
}

// UpdateCategory renames an expense category
func (h *ExpenseHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req financeapp.UpdateExpenseCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindingErrorMessage(err))
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, category)
}

// DeleteCategory removes an expense category. Expenses in the category
// keep their amounts with the category reference cleared.
func (h *ExpenseHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListByCategory returns the expenses recorded under one category
func (h *ExpenseHandler) ListByCategory(c *gin.Context) {
	id, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	filter, ok := h.bindListFilter(c)
	if !ok {
		return
	}

	page, err := h.expenseService.ListByCategory(c.Request.Context(), id, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Paginated(c, page.Items, page.Total, page.Page, page.PageSize)
}
