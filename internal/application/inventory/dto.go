package inventory

import (
	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/inventory"
)

// UpdateStockRequest sets the absolute stock count for a product
type UpdateStockRequest struct {
	Stock int `json:"stock" binding:"gte=0"`
}

// InventoryListFilter represents filter options for the inventory list
type InventoryListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

// InventoryItemResponse represents one row of the inventory listing
type InventoryItemResponse struct {
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

// StatsResponse aggregates the inventory as a whole
type StatsResponse struct {
	TotalProducts int64   `json:"total_products"`
	TotalStock    int64   `json:"total_stock"`
	AveragePrice  float64 `json:"average_price"`
}

// ToInventoryItemResponse converts a view row
func ToInventoryItemResponse(v *inventory.InventoryView) InventoryItemResponse {
	return InventoryItemResponse{
		ProductID: v.ProductID,
		Name:      v.Name,
		Category:  v.Category,
		Material:  v.Material,
		Color:     v.Color,
		Height:    v.Height,
		Width:     v.Width,
		Depth:     v.Depth,
		NetPrice:  v.NetPrice,
		Stock:     v.Stock,
	}
}

// ToInventoryItemResponses converts a slice of view rows
func ToInventoryItemResponses(views []inventory.InventoryView) []InventoryItemResponse {
	responses := make([]InventoryItemResponse, 0, len(views))
	for i := range views {
		responses = append(responses, ToInventoryItemResponse(&views[i]))
	}
	return responses
}
