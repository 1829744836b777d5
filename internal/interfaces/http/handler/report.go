package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	reportapp "github.com/muebleria/backend/internal/application/report"
)

// ReportHandler handles dashboard report API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GeneralStats aggregates sales from the last 30 days
func (h *ReportHandler) GeneralStats(c *gin.Context) {
	stats, err := h.reportService.GeneralStats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// TopProducts returns the best-selling products
func (h *ReportHandler) TopProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	products, err := h.reportService.TopProducts(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// TopSellers returns the sellers with most recorded sales
func (h *ReportHandler) TopSellers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	sellers, err := h.reportService.TopSellers(c.Request.Context(), limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sellers)
}

// MonthlySales returns per-month aggregates for the last 12 months
func (h *ReportHandler) MonthlySales(c *gin.Context) {
	months, err := h.reportService.MonthlySales(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, months)
}
