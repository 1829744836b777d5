package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/shared"
)

// InventoryView is the read model joining a product with its stock and lookups.
// It mirrors the inventory listing the back office renders.
type InventoryView struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Material  string    `json:"material"`
	Color     string    `json:"color"`
	Height    float64   `json:"height"`
	Width     float64   `json:"width"`
	Depth     float64   `json:"depth"`
	NetPrice  float64   `json:"net_price"`
	Stock     int       `json:"stock"`
}

// Stats aggregates the inventory as a whole
type Stats struct {
	TotalProducts int64   `json:"total_products"`
	TotalStock    int64   `json:"total_stock"`
	AveragePrice  float64 `json:"average_price"`
}

// InventoryItemRepository defines the interface for inventory persistence
type InventoryItemRepository interface {
	// FindByProductID finds the inventory row for a product
	FindByProductID(ctx context.Context, productID uuid.UUID) (*InventoryItem, error)

	// Save creates or updates an inventory row
	Save(ctx context.Context, item *InventoryItem) error

	// ListView returns the joined inventory view, optionally filtered
	ListView(ctx context.Context, filter shared.Filter) ([]InventoryView, error)

	// GetView returns the joined view for one product
	GetView(ctx context.Context, productID uuid.UUID) (*InventoryView, error)

	// GetStats returns aggregate inventory statistics
	GetStats(ctx context.Context) (*Stats, error)
}
