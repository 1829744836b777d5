package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/partner"
	"github.com/muebleria/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier with its address, contact and category links
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	var supplier partner.Supplier
	if err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("Contact").
		Preload("Contact.Address").
		Preload("Categories").
		First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

// FindAll finds all suppliers with their associations
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	var suppliers []partner.Supplier
	if err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("Contact").
		Preload("Contact.Address").
		Preload("Categories").
		Order("company_name ASC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Search finds suppliers matching the term across company name, contact name
// and supplied category names
func (r *GormSupplierRepository) Search(ctx context.Context, term string) ([]partner.Supplier, error) {
	pattern := "%" + term + "%"
	var suppliers []partner.Supplier
	if err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("Contact").
		Preload("Contact.Address").
		Preload("Categories").
		Joins("JOIN supplier_contacts ON supplier_contacts.id = suppliers.contact_id").
		Joins("LEFT JOIN supplier_categories ON supplier_categories.supplier_id = suppliers.id").
		Joins("LEFT JOIN categories ON categories.id = supplier_categories.category_id").
		Where(`suppliers.company_name ILIKE ? OR supplier_contacts.first_name ILIKE ?
			OR supplier_contacts.last_name ILIKE ? OR categories.name ILIKE ?`,
			pattern, pattern, pattern, pattern).
		Distinct("suppliers.*").
		Order("suppliers.company_name ASC").
		Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// SaveGraph persists both addresses, the contact, the supplier and its
// category links in one transaction
func (r *GormSupplierRepository) SaveGraph(ctx context.Context, supplier *partner.Supplier, address *partner.Address, contact *partner.SupplierContact, contactAddress *partner.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(contactAddress).Error; err != nil {
			return err
		}
		if err := tx.Create(address).Error; err != nil {
			return err
		}
		if err := tx.Omit("Address").Create(contact).Error; err != nil {
			return err
		}
		if err := tx.Omit("Address", "Contact", "Categories").Create(supplier).Error; err != nil {
			return err
		}
		if len(supplier.Categories) > 0 {
			if err := tx.Create(&supplier.Categories).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
