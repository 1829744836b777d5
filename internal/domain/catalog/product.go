package catalog

import (
	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a furniture piece offered by the store.
// Dimensions are stored in centimeters, the net price in the default currency.
type Product struct {
	shared.BaseEntity
	Name       string          `gorm:"size:200;not null"`
	Height     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Width      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Depth      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Diagonal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	NetPrice   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
	MaterialID uuid.UUID       `gorm:"type:uuid;not null"`
	ColorID    uuid.UUID       `gorm:"type:uuid;not null"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Material *Material `gorm:"foreignKey:MaterialID"`
	Color    *Color    `gorm:"foreignKey:ColorID"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProductParams groups the attributes required to create a product
type NewProductParams struct {
	Name       string
	Height     decimal.Decimal
	Width      decimal.Decimal
	Depth      decimal.Decimal
	Diagonal   decimal.Decimal
	NetPrice   decimal.Decimal
	CategoryID uuid.UUID
	MaterialID uuid.UUID
	ColorID    uuid.UUID
}

// NewProduct creates a new furniture product
func NewProduct(p NewProductParams) (*Product, error) {
	if p.Name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if p.NetPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Net price cannot be negative")
	}
	if p.Height.IsNegative() || p.Width.IsNegative() || p.Depth.IsNegative() || p.Diagonal.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DIMENSIONS", "Dimensions cannot be negative")
	}
	if p.CategoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}
	if p.MaterialID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MATERIAL", "Material ID cannot be empty")
	}
	if p.ColorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COLOR", "Color ID cannot be empty")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       p.Name,
		Height:     p.Height,
		Width:      p.Width,
		Depth:      p.Depth,
		Diagonal:   p.Diagonal,
		NetPrice:   p.NetPrice,
		CategoryID: p.CategoryID,
		MaterialID: p.MaterialID,
		ColorID:    p.ColorID,
	}, nil
}

// UpdateNetPrice changes the product's net price
func (p *Product) UpdateNetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Net price cannot be negative")
	}
	p.NetPrice = price
	p.Touch()
	return nil
}
