package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs finds products by a set of IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindAll finds all products
	FindAll(ctx context.Context) ([]Product, error)

	// SaveWithInitialStock persists a product together with its inventory row
	// holding the initial stock, atomically
	SaveWithInitialStock(ctx context.Context, product *Product, initialStock int) error
}

// CategoryRepository defines the interface for category lookups
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
}

// MaterialRepository defines the interface for material lookups
type MaterialRepository interface {
	FindAll(ctx context.Context) ([]Material, error)
}

// ColorRepository defines the interface for color lookups
type ColorRepository interface {
	FindAll(ctx context.Context) ([]Color, error)
}
