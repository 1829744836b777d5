package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindAll finds all customers with their addresses
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// Search finds customers matching the term across name, national ID,
	// email, phone and address fields
	Search(ctx context.Context, term string) ([]Customer, error)

	// SaveWithAddress persists a customer together with its address, atomically
	SaveWithAddress(ctx context.Context, customer *Customer, address *Address) error

	// ExistsByNationalID checks whether a national ID is already registered
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)
}

// SellerRepository defines the interface for seller lookups
type SellerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Seller, error)
	FindAll(ctx context.Context) ([]Seller, error)
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier with its address, contact and categories
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)

	// FindAll finds all suppliers with their associations
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)

	// Search finds suppliers matching the term across company, contact and
	// supplied category names
	Search(ctx context.Context, term string) ([]Supplier, error)

	// SaveGraph persists address, contact (with its own address), supplier and
	// category links in one transaction
	SaveGraph(ctx context.Context, supplier *Supplier, address *Address, contact *SupplierContact, contactAddress *Address) error
}
