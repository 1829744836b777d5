package inventory

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/shared"
)

// InventoryItem tracks the available stock for a single product.
// Stock is the only shared mutable counter in the system; it is guarded by a
// database row lock, never by an application-level mutex.
type InventoryItem struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Stock     int       `gorm:"not null;default:0;check:stock >= 0"`
}

// TableName returns the table name for GORM
func (InventoryItem) TableName() string {
	return "inventory_items"
}

// NewInventoryItem creates an inventory row for a product
func NewInventoryItem(productID uuid.UUID, stock int) (*InventoryItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	return &InventoryItem{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Stock:      stock,
	}, nil
}

// CanDeduct reports whether the requested quantity is available
func (i *InventoryItem) CanDeduct(quantity int) bool {
	return quantity > 0 && i.Stock >= quantity
}

// Deduct removes quantity from stock, failing if it would go negative
func (i *InventoryItem) Deduct(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if i.Stock < quantity {
		return NewInsufficientStockError(i.ProductID, quantity, i.Stock)
	}
	i.Stock -= quantity
	i.Touch()
	return nil
}

// SetStock replaces the stock count with an absolute value
func (i *InventoryItem) SetStock(stock int) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	i.Stock = stock
	i.Touch()
	return nil
}

// NewInsufficientStockError builds the stock shortfall error for a product,
// carrying the requested and available quantities
func NewInsufficientStockError(productID uuid.UUID, requested, available int) *shared.DomainError {
	return shared.NewDomainError(
		"INSUFFICIENT_STOCK",
		fmt.Sprintf("Insufficient stock for product %s: requested %d, available %d",
			productID, requested, available),
	)
}
