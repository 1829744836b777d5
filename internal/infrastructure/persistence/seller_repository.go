package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/partner"
	"github.com/muebleria/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSellerRepository implements SellerRepository using GORM
type GormSellerRepository struct {
	db *gorm.DB
}

// NewGormSellerRepository creates a new GormSellerRepository
func NewGormSellerRepository(db *gorm.DB) *GormSellerRepository {
	return &GormSellerRepository{db: db}
}

// FindByID finds a seller by ID
func (r *GormSellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Seller, error) {
	var seller partner.Seller
	if err := r.db.WithContext(ctx).First(&seller, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &seller, nil
}

// FindAll finds all sellers ordered by last name
func (r *GormSellerRepository) FindAll(ctx context.Context) ([]partner.Seller, error) {
	var sellers []partner.Seller
	if err := r.db.WithContext(ctx).
		Order("last_name ASC, first_name ASC").
		Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}
