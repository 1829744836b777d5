package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll finds all categories ordered by name
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GormMaterialRepository implements MaterialRepository using GORM
type GormMaterialRepository struct {
	db *gorm.DB
}

// NewGormMaterialRepository creates a new GormMaterialRepository
func NewGormMaterialRepository(db *gorm.DB) *GormMaterialRepository {
	return &GormMaterialRepository{db: db}
}

// FindAll finds all materials ordered by name
func (r *GormMaterialRepository) FindAll(ctx context.Context) ([]catalog.Material, error) {
	var materials []catalog.Material
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// GormColorRepository implements ColorRepository using GORM
type GormColorRepository struct {
	db *gorm.DB
}

// NewGormColorRepository creates a new GormColorRepository
func NewGormColorRepository(db *gorm.DB) *GormColorRepository {
	return &GormColorRepository{db: db}
}

// FindAll finds all colors ordered by name
func (r *GormColorRepository) FindAll(ctx context.Context) ([]catalog.Color, error) {
	var colors []catalog.Color
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}
