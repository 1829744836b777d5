package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductService handles product registration and lookup operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	materialRepo catalog.MaterialRepository
	colorRepo    catalog.ColorRepository
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	materialRepo catalog.MaterialRepository,
	colorRepo catalog.ColorRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		materialRepo: materialRepo,
		colorRepo:    colorRepo,
	}
}

// Create registers a product together with its initial stock
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
		}
		return nil, err
	}

	product, err := catalog.NewProduct(catalog.NewProductParams{
		Name:       req.Name,
		Height:     decimal.NewFromFloat(req.Height),
		Width:      decimal.NewFromFloat(req.Width),
		Depth:      decimal.NewFromFloat(req.Depth),
		Diagonal:   decimal.NewFromFloat(req.Diagonal),
		NetPrice:   decimal.NewFromFloat(req.NetPrice),
		CategoryID: req.CategoryID,
		MaterialID: req.MaterialID,
		ColorID:    req.ColorID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.SaveWithInitialStock(ctx, product, req.InitialStock); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product with its lookups
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves all products
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Categories retrieves all furniture categories
func (s *ProductService) Categories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCategoryResponses(categories), nil
}

// Materials retrieves all materials
func (s *ProductService) Materials(ctx context.Context) ([]LookupResponse, error) {
	materials, err := s.materialRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToMaterialResponses(materials), nil
}

// Colors retrieves all colors
func (s *ProductService) Colors(ctx context.Context) ([]LookupResponse, error) {
	colors, err := s.colorRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToColorResponses(colors), nil
}
