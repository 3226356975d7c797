package catalog

import (
	"time"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest represents a request to create a product category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

// UpdateCategoryRequest represents a request to update a product category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a category entity to a response DTO
func ToCategoryResponse(category *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of category entities
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *ToCategoryResponse(&categories[i]))
	}
	return responses
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	Brand         string           `json:"brand" binding:"max=100"`
	ModelCode     string           `json:"model_code" binding:"max=100"`
	StockQuantity int              `json:"stock_quantity"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	SalePrice     decimal.Decimal  `json:"sale_price" binding:"required"`
	Notes         string           `json:"notes"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	ClearCategory bool             `json:"clear_category"`
	Brand         *string          `json:"brand" binding:"omitempty,max=100"`
	ModelCode     *string          `json:"model_code" binding:"omitempty,max=100"`
	StockQuantity *int             `json:"stock_quantity"`
	CostPrice     *decimal.Decimal `json:"cost_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	Notes         *string          `json:"notes"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	CategoryName  string           `json:"category_name"`
	Brand         string           `json:"brand"`
	ModelCode     string           `json:"model_code"`
	StockQuantity int              `json:"stock_quantity"`
	CostPrice     *decimal.Decimal `json:"cost_price,omitempty"`
	SalePrice     decimal.Decimal  `json:"sale_price"`
	Notes         string           `json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ToProductResponse converts a product entity to a response DTO. A deleted
// category shows a placeholder name while the row itself stays intact.
func ToProductResponse(product *catalog.Product) *ProductResponse {
	categoryName := ""
	if product.CategoryID != nil {
		categoryName = "(deleted category)"
	}
	if product.Category != nil {
		categoryName = product.Category.Name
	}
	return &ProductResponse{
		ID:            product.ID,
		Name:          product.Name,
		CategoryID:    product.CategoryID,
		CategoryName:  categoryName,
		Brand:         product.Brand,
		ModelCode:     product.ModelCode,
		StockQuantity: product.StockQuantity,
		CostPrice:     product.CostPrice,
		SalePrice:     product.SalePrice,
		Notes:         product.Notes,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}

// ToProductResponses converts a slice of product entities
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *ToProductResponse(&products[i]))
	}
	return responses
}

// UpdateStockSettingsRequest sets the low-stock alert thresholds
type UpdateStockSettingsRequest struct {
	LowStockTier1 int `json:"low_stock_tier_1" binding:"min=0"`
	LowStockTier2 int `json:"low_stock_tier_2" binding:"min=0"`
}

// StockSettingsResponse represents the stock settings in API responses
type StockSettingsResponse struct {
	LowStockTier1 int       `json:"low_stock_tier_1"`
	LowStockTier2 int       `json:"low_stock_tier_2"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToStockSettingsResponse converts the settings entity to a response DTO
func ToStockSettingsResponse(settings *catalog.StockSettings) *StockSettingsResponse {
	return &StockSettingsResponse{
		LowStockTier1: settings.LowStockTier1,
		LowStockTier2: settings.LowStockTier2,
		UpdatedAt:     settings.UpdatedAt,
	}
}
