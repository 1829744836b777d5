package report

import "context"

// GeneralStats aggregates sales over the last 30 days
type GeneralStats struct {
	TotalSales   int64   `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
	AverageSale  float64 `json:"average_sale"`
	UnitsSold    int64   `json:"units_sold"`
}

// TopProduct is a best-selling product entry
type TopProduct struct {
	ProductName string  `json:"product_name"`
	UnitsSold   int64   `json:"units_sold"`
	Revenue     float64 `json:"revenue"`
}

// TopSeller is a best-performing seller entry
type TopSeller struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	SalesCount int64   `json:"sales_count"`
	Revenue    float64 `json:"revenue"`
}

// MonthlySales is one month's aggregated sales
type MonthlySales struct {
	Month      string  `json:"month"`
	SalesCount int64   `json:"sales_count"`
	Revenue    float64 `json:"revenue"`
}

// Repository defines read-only aggregation queries over committed sales
type Repository interface {
	// GeneralStats aggregates sales from the last 30 days
	GeneralStats(ctx context.Context) (*GeneralStats, error)

	// TopProducts returns the products with most units sold
	TopProducts(ctx context.Context, limit int) ([]TopProduct, error)

	// TopSellers returns the sellers with most recorded sales
	TopSellers(ctx context.Context, limit int) ([]TopSeller, error)

	// MonthlySales returns per-month aggregates for the last 12 months,
	// newest first
	MonthlySales(ctx context.Context) ([]MonthlySales, error)
}
