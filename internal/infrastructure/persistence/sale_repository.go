package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/trade"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// CreateWithStockDeduction persists the sale and applies stock deductions in
// one transaction. Inventory rows are locked with SELECT ... FOR UPDATE in a
// single statement ordered by product ID, so two concurrent sales touching the
// same products always acquire locks in the same order. Any failure rolls the
// whole transaction back.
func (r *GormSaleRepository) CreateWithStockDeduction(ctx context.Context, sale *trade.Sale, deductions []trade.StockedLine) error {
	if len(deductions) == 0 {
		return shared.NewDomainError("INVALID_INPUT", "Sale must contain at least one item")
	}

	productIDs := make([]uuid.UUID, 0, len(deductions))
	requested := make(map[uuid.UUID]int, len(deductions))
	for _, d := range deductions {
		productIDs = append(productIDs, d.ProductID)
		requested[d.ProductID] = d.Quantity
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []inventory.InventoryItem
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id IN ?", productIDs).
			Order("product_id ASC").
			Find(&items).Error; err != nil {
			return err
		}

		if len(items) != len(productIDs) {
			found := make(map[uuid.UUID]bool, len(items))
			for i := range items {
				found[items[i].ProductID] = true
			}
			for _, id := range productIDs {
				if !found[id] {
					return shared.NewDomainError("NOT_FOUND",
						"No inventory record for product "+id.String())
				}
			}
		}

		// All availability checks happen while the locks are held. Nothing is
		// written until every line is known to be satisfiable.
		for i := range items {
			qty := requested[items[i].ProductID]
			if !items[i].CanDeduct(qty) {
				return inventory.NewInsufficientStockError(items[i].ProductID, qty, items[i].Stock)
			}
		}

		if err := tx.Omit("Lines").Create(sale).Error; err != nil {
			return err
		}
		if err := tx.Create(&sale.Lines).Error; err != nil {
			return err
		}

		for _, id := range productIDs {
			res := tx.Model(&inventory.InventoryItem{}).
				Where("product_id = ?", id).
				Updates(map[string]interface{}{
					"stock":      gorm.Expr("stock - ?", requested[id]),
					"updated_at": time.Now(),
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != 1 {
				return shared.ErrPersistence
			}
		}

		return nil
	})
}

// FindByID finds a sale with its lines
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	var sale trade.Sale
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll finds sales ordered by sale date descending, lines preloaded
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Sale, error) {
	var sales []trade.Sale
	if err := r.db.WithContext(ctx).
		Preload("Lines").
		Order("sold_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Stats aggregates sales recorded since the given time
func (r *GormSaleRepository) Stats(ctx context.Context, since time.Time) (*trade.SaleStats, error) {
	var stats trade.SaleStats
	if err := r.db.WithContext(ctx).
		Model(&trade.Sale{}).
		Select("COUNT(*) AS total_sales, COALESCE(SUM(total_price), 0) AS total_revenue, COALESCE(AVG(total_price), 0) AS average_sale").
		Where("sold_at >= ?", since).
		Scan(&stats).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Model(&trade.SaleLine{}).
		Select("COALESCE(SUM(sale_lines.quantity), 0)").
		Joins("JOIN sales ON sales.id = sale_lines.sale_id").
		Where("sales.sold_at >= ?", since).
		Scan(&stats.UnitsSold).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
