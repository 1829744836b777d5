package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/trade"
)

// CreateSaleItemInput is one product-quantity entry in a sale request.
// The same product may appear more than once; quantities are accumulated.
type CreateSaleItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gt=0"`
}

// CreateSaleRequest represents a request to record a sale.
// Total is the price the caller displayed to the customer; the server
// recomputes it from current product prices and rejects a mismatch.
type CreateSaleRequest struct {
	SellerID   uuid.UUID             `json:"seller_id" binding:"required"`
	CustomerID uuid.UUID             `json:"customer_id" binding:"required"`
	Total      float64               `json:"total" binding:"required,gt=0"`
	Items      []CreateSaleItemInput `json:"items" binding:"required,min=1,dive"`
}

// SaleLineResponse represents a sale line in API responses
type SaleLineResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	LineTotal float64   `json:"line_total"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID         uuid.UUID          `json:"id"`
	SellerID   uuid.UUID          `json:"seller_id"`
	CustomerID uuid.UUID          `json:"customer_id"`
	SoldAt     time.Time          `json:"sold_at"`
	TotalPrice float64            `json:"total_price"`
	Lines      []SaleLineResponse `json:"lines"`
}

// SaleListFilter represents filter options for the sale list
type SaleListFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// SaleStatsResponse aggregates sales over a window
type SaleStatsResponse struct {
	TotalSales   int64   `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
	AverageSale  float64 `json:"average_sale"`
	UnitsSold    int64   `json:"units_sold"`
}

// ToSaleResponse converts a sale to its response representation
func ToSaleResponse(sale *trade.Sale) SaleResponse {
	lines := make([]SaleLineResponse, 0, len(sale.Lines))
	for i := range sale.Lines {
		l := &sale.Lines[i]
		lines = append(lines, SaleLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.InexactFloat64(),
			LineTotal: l.LineTotal().InexactFloat64(),
		})
	}
	return SaleResponse{
		ID:         sale.ID,
		SellerID:   sale.SellerID,
		CustomerID: sale.CustomerID,
		SoldAt:     sale.SoldAt,
		TotalPrice: sale.TotalPrice.InexactFloat64(),
		Lines:      lines,
	}
}

// ToSaleResponses converts a slice of sales
func ToSaleResponses(sales []trade.Sale) []SaleResponse {
	responses := make([]SaleResponse, 0, len(sales))
	for i := range sales {
		responses = append(responses, ToSaleResponse(&sales[i]))
	}
	return responses
}

// ToSaleStatsResponse converts sale stats
func ToSaleStatsResponse(stats *trade.SaleStats) SaleStatsResponse {
	return SaleStatsResponse{
		TotalSales:   stats.TotalSales,
		TotalRevenue: stats.TotalRevenue,
		AverageSale:  stats.AverageSale,
		UnitsSold:    stats.UnitsSold,
	}
}
