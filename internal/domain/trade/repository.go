package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/shared"
)

// StockedLine pairs a product reference with the quantity to deduct.
// Quantities are pre-accumulated per product by the application layer.
type StockedLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// SaleRepository defines the interface for sale persistence.
//
// CreateWithStockDeduction is the only write path for sales: it must insert the
// sale header and all lines and decrement inventory stock in one transaction,
// locking the affected inventory rows in ascending product-ID order so that
// concurrent sales of the same products serialize instead of deadlocking.
// On any failure no row of any kind may persist.
type SaleRepository interface {
	// CreateWithStockDeduction atomically persists the sale and applies the
	// per-product stock deductions. Returns inventory.InsufficientStock via a
	// DomainError when any deduction would drive stock negative.
	CreateWithStockDeduction(ctx context.Context, sale *Sale, deductions []StockedLine) error

	// FindByID finds a sale with its lines
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindAll finds sales ordered by sale date descending, lines preloaded
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)

	// Stats aggregates sales recorded since the given time
	Stats(ctx context.Context, since time.Time) (*SaleStats, error)
}

// SaleStats aggregates committed sales over a window
type SaleStats struct {
	TotalSales   int64   `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
	AverageSale  float64 `json:"average_sale"`
	UnitsSold    int64   `json:"units_sold"`
}
