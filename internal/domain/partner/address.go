package partner

import (
	"github.com/muebleria/backend/internal/domain/shared"
)

// Address represents a postal address owned by a customer, supplier or contact
type Address struct {
	shared.BaseEntity
	Street     string `gorm:"size:300;not null"`
	Complement string `gorm:"size:200"`
	PostalCode string `gorm:"size:20"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "addresses"
}

// NewAddress creates a new address
func NewAddress(street, complement, postalCode string) (*Address, error) {
	if street == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Street cannot be empty")
	}
	return &Address{
		BaseEntity: shared.NewBaseEntity(),
		Street:     street,
		Complement: complement,
		PostalCode: postalCode,
	}, nil
}
