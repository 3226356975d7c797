package catalog

import (
	"context"

	"github.com/backoffice/backend/internal/domain/catalog"
	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.SalePrice)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Brand, req.ModelCode, req.Notes); err != nil {
		return nil, err
	}
	if err := product.SetPrices(req.CostPrice, req.SalePrice); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.SetCategory(req.CategoryID)
	}
	if req.StockQuantity != 0 {
		product.SetStockQuantity(req.StockQuantity)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID returns a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List returns products matching the filter
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToProductResponses(products), total, filter.Page, filter.Limit())
	return &page, nil
}

// ListByCategory returns products in a category
func (s *ProductService) ListByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindByCategory(ctx, categoryID, filter)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update updates a product. Stock set here is a manual correction, not a
// sale-driven adjustment.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	brand := product.Brand
	if req.Brand != nil {
		brand = *req.Brand
	}
	modelCode := product.ModelCode
	if req.ModelCode != nil {
		modelCode = *req.ModelCode
	}
	notes := product.Notes
	if req.Notes != nil {
		notes = *req.Notes
	}
	if err := product.Update(name, brand, modelCode, notes); err != nil {
		return nil, err
	}

	if req.ClearCategory {
		product.SetCategory(nil)
	} else if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.SetCategory(req.CategoryID)
	}

	if req.CostPrice != nil || req.SalePrice != nil {
		costPrice := product.CostPrice
		if req.CostPrice != nil {
			costPrice = req.CostPrice
		}
		salePrice := product.SalePrice
		if req.SalePrice != nil {
			salePrice = *req.SalePrice
		}
		if err := product.SetPrices(costPrice, salePrice); err != nil {
			return nil, err
		}
	}

	if req.StockQuantity != nil {
		product.SetStockQuantity(*req.StockQuantity)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Delete removes a product; historical sale line items keep their rows.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}
