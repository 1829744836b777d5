package persistence

import (
	"context"
	"time"

	"github.com/muebleria/backend/internal/domain/report"
	"gorm.io/gorm"
)

// GormReportRepository implements report.Repository using raw aggregate queries
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// GeneralStats aggregates sales from the last 30 days
func (r *GormReportRepository) GeneralStats(ctx context.Context) (*report.GeneralStats, error) {
	since := time.Now().AddDate(0, 0, -30)

	var stats report.GeneralStats
	if err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total_sales,
		       COALESCE(SUM(total_price), 0) AS total_revenue,
		       COALESCE(AVG(total_price), 0) AS average_sale
		FROM sales
		WHERE sold_at >= ?`, since).
		Scan(&stats).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(sale_lines.quantity), 0)
		FROM sale_lines
		JOIN sales ON sales.id = sale_lines.sale_id
		WHERE sales.sold_at >= ?`, since).
		Scan(&stats.UnitsSold).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

// TopProducts returns the products with most units sold
func (r *GormReportRepository) TopProducts(ctx context.Context, limit int) ([]report.TopProduct, error) {
	if limit <= 0 {
		limit = 5
	}

	var products []report.TopProduct
	if err := r.db.WithContext(ctx).Raw(`
		SELECT products.name AS product_name,
		       SUM(sale_lines.quantity) AS units_sold,
		       SUM(sale_lines.quantity * sale_lines.unit_price) AS revenue
		FROM sale_lines
		JOIN products ON products.id = sale_lines.product_id
		GROUP BY products.id, products.name
		ORDER BY units_sold DESC, revenue DESC
		LIMIT ?`, limit).
		Scan(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// TopSellers returns the sellers with most recorded sales
func (r *GormReportRepository) TopSellers(ctx context.Context, limit int) ([]report.TopSeller, error) {
	if limit <= 0 {
		limit = 5
	}

	var sellers []report.TopSeller
	if err := r.db.WithContext(ctx).Raw(`
		SELECT sellers.first_name AS first_name,
		       sellers.last_name AS last_name,
		       COUNT(sales.id) AS sales_count,
		       COALESCE(SUM(sales.total_price), 0) AS revenue
		FROM sales
		JOIN sellers ON sellers.id = sales.seller_id
		GROUP BY sellers.id, sellers.first_name, sellers.last_name
		ORDER BY sales_count DESC, revenue DESC
		LIMIT ?`, limit).
		Scan(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}

// MonthlySales returns per-month aggregates for the last 12 months, newest first
func (r *GormReportRepository) MonthlySales(ctx context.Context) ([]report.MonthlySales, error) {
	since := time.Now().AddDate(-1, 0, 0)

	var months []report.MonthlySales
	if err := r.db.WithContext(ctx).Raw(`
		SELECT to_char(date_trunc('month', sold_at), 'YYYY-MM') AS month,
		       COUNT(*) AS sales_count,
		       COALESCE(SUM(total_price), 0) AS revenue
		FROM sales
		WHERE sold_at >= ?
		GROUP BY date_trunc('month', sold_at)
		ORDER BY month DESC`, since).
		Scan(&months).Error; err != nil {
		return nil, err
	}
	return months, nil
}
