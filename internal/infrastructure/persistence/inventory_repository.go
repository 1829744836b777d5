package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// inventoryViewSelect joins products with their stock and lookup names.
const inventoryViewSelect = `products.id AS product_id,
products.name AS name,
categories.name AS category,
materials.name AS material,
colors.name AS color,
products.height AS height,
products.width AS width,
products.depth AS depth,
products.net_price AS net_price,
inventory_items.stock AS stock`

// GormInventoryRepository implements InventoryItemRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByProductID finds the inventory row for a product
func (r *GormInventoryRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*inventory.InventoryItem, error) {
	var item inventory.InventoryItem
	if err := r.db.WithContext(ctx).
		First(&item, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Save creates or updates an inventory row
func (r *GormInventoryRepository) Save(ctx context.Context, item *inventory.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// ListView returns the joined inventory view, optionally filtered by a search
// term over product, category, material and color names
func (r *GormInventoryRepository) ListView(ctx context.Context, filter shared.Filter) ([]inventory.InventoryView, error) {
	var views []inventory.InventoryView

	query := r.viewQuery(ctx)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"products.name ILIKE ? OR categories.name ILIKE ? OR materials.name ILIKE ? OR colors.name ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if err := query.
		Order("products.name ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// GetView returns the joined view for one product
func (r *GormInventoryRepository) GetView(ctx context.Context, productID uuid.UUID) (*inventory.InventoryView, error) {
	var view inventory.InventoryView
	res := r.viewQuery(ctx).
		Where("products.id = ?", productID).
		Limit(1).
		Scan(&view)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return &view, nil
}

// GetStats returns aggregate inventory statistics
func (r *GormInventoryRepository) GetStats(ctx context.Context) (*inventory.Stats, error) {
	var stats inventory.Stats
	if err := r.db.WithContext(ctx).
		Model(&inventory.InventoryItem{}).
		Select("COUNT(*) AS total_products, COALESCE(SUM(stock), 0) AS total_stock").
		Scan(&stats).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Table("products").
		Select("COALESCE(AVG(net_price), 0)").
		Scan(&stats.AveragePrice).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *GormInventoryRepository) viewQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("products").
		Select(inventoryViewSelect).
		Joins("JOIN inventory_items ON inventory_items.product_id = products.id").
		Joins("JOIN categories ON categories.id = products.category_id").
		Joins("JOIN materials ON materials.id = products.material_id").
		Joins("JOIN colors ON colors.id = products.color_id")
}
