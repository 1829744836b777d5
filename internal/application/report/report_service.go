// Package report exposes read-only sales aggregations for the back office
// dashboard.
package report

import (
	"context"

	"github.com/muebleria/backend/internal/domain/report"
)

// defaultTopLimit bounds the top-products and top-sellers rankings
const defaultTopLimit = 5

// ReportService handles dashboard report queries
type ReportService struct {
	reportRepo report.Repository
}

// NewReportService creates a new ReportService
func NewReportService(reportRepo report.Repository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// GeneralStats aggregates sales from the last 30 days
func (s *ReportService) GeneralStats(ctx context.Context) (*report.GeneralStats, error) {
	return s.reportRepo.GeneralStats(ctx)
}

// TopProducts returns the best-selling products
func (s *ReportService) TopProducts(ctx context.Context, limit int) ([]report.TopProduct, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.reportRepo.TopProducts(ctx, limit)
}

// TopSellers returns the sellers with most recorded sales
func (s *ReportService) TopSellers(ctx context.Context, limit int) ([]report.TopSeller, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.reportRepo.TopSellers(ctx, limit)
}

// MonthlySales returns per-month aggregates for the last 12 months
func (s *ReportService) MonthlySales(ctx context.Context) ([]report.MonthlySales, error) {
	return s.reportRepo.MonthlySales(ctx)
}
