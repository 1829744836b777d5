package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/partner"
	"github.com/muebleria/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer with its address
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var customer partner.Customer
	if err := r.db.WithContext(ctx).
		Preload("Address").
		First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindAll finds all customers with their addresses, newest first
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	var customers []partner.Customer
	if err := r.db.WithContext(ctx).
		Preload("Address").
		Order("registered_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Search finds customers matching the term across name, national ID, email,
// phone and address fields
func (r *GormCustomerRepository) Search(ctx context.Context, term string) ([]partner.Customer, error) {
	pattern := "%" + term + "%"
	var customers []partner.Customer
	if err := r.db.WithContext(ctx).
		Preload("Address").
		Joins("JOIN addresses ON addresses.id = customers.address_id").
		Where(`customers.first_name ILIKE ? OR customers.last_name ILIKE ?
			OR customers.national_id ILIKE ? OR customers.email ILIKE ?
			OR customers.phone ILIKE ? OR addresses.street ILIKE ?`,
			pattern, pattern, pattern, pattern, pattern, pattern).
		Order("customers.registered_at DESC").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// SaveWithAddress persists the address and the customer in one transaction
func (r *GormCustomerRepository) SaveWithAddress(ctx context.Context, customer *partner.Customer, address *partner.Address) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(address).Error; err != nil {
			return err
		}
		return tx.Omit("Address").Create(customer).Error
	})
}

// ExistsByNationalID checks whether a national ID is already registered
func (r *GormCustomerRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Customer{}).
		Where("national_id = ?", nationalID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
