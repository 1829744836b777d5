package partner

import (
	"context"

	"github.com/muebleria/backend/internal/domain/partner"
)

// SellerService handles seller lookups
type SellerService struct {
	sellerRepo partner.SellerRepository
}

// NewSellerService creates a new SellerService
func NewSellerService(sellerRepo partner.SellerRepository) *SellerService {
	return &SellerService{sellerRepo: sellerRepo}
}

// List retrieves all sellers
func (s *SellerService) List(ctx context.Context) ([]SellerResponse, error) {
	sellers, err := s.sellerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToSellerResponses(sellers), nil
}
