package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/shared"
)

// InventoryService handles inventory listing and stock adjustments
type InventoryService struct {
	inventoryRepo inventory.InventoryItemRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(inventoryRepo inventory.InventoryItemRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// List returns the joined inventory view, optionally filtered by a search term
func (s *InventoryService) List(ctx context.Context, filter InventoryListFilter) ([]InventoryItemResponse, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search

	views, err := s.inventoryRepo.ListView(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return ToInventoryItemResponses(views), nil
}

// GetByProductID returns the inventory view for one product
func (s *InventoryService) GetByProductID(ctx context.Context, productID uuid.UUID) (*InventoryItemResponse, error) {
	view, err := s.inventoryRepo.GetView(ctx, productID)
	if err != nil {
		return nil, err
	}
	response := ToInventoryItemResponse(view)
	return &response, nil
}

// UpdateStock replaces the stock count for a product with an absolute value.
// Manual corrections only; sales never go through this path.
func (s *InventoryService) UpdateStock(ctx context.Context, productID uuid.UUID, req UpdateStockRequest) (*InventoryItemResponse, error) {
	item, err := s.inventoryRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := item.SetStock(req.Stock); err != nil {
		return nil, err
	}
	if err := s.inventoryRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	return s.GetByProductID(ctx, productID)
}

// Stats returns aggregate inventory statistics
func (s *InventoryService) Stats(ctx context.Context) (*StatsResponse, error) {
	stats, err := s.inventoryRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsResponse{
		TotalProducts: stats.TotalProducts,
		TotalStock:    stats.TotalStock,
		AveragePrice:  stats.AveragePrice,
	}, nil
}
