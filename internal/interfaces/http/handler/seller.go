package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/muebleria/backend/internal/application/partner"
)

// SellerHandler handles seller API endpoints
type SellerHandler struct {
	BaseHandler
	sellerService *partnerapp.SellerService
}

// NewSellerHandler creates a new SellerHandler
func NewSellerHandler(sellerService *partnerapp.SellerService) *SellerHandler {
	return &SellerHandler{sellerService: sellerService}
}

// List retrieves all sellers
func (h *SellerHandler) List(c *gin.Context) {
	sellers, err := h.sellerService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sellers)
}
