package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/shared"
)

// Customer represents a registered store customer.
// The customer owns exactly one address; both rows are created in the same
// transaction.
type Customer struct {
	shared.BaseEntity
	FirstName    string    `gorm:"size:100;not null"`
	LastName     string    `gorm:"size:100;not null"`
	NationalID   string    `gorm:"size:20;not null;uniqueIndex"`
	Phone        string    `gorm:"size:30"`
	Email        string    `gorm:"size:200"`
	AddressID    uuid.UUID `gorm:"type:uuid;not null"`
	RegisteredAt time.Time `gorm:"not null"`

	Address *Address `gorm:"foreignKey:AddressID"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer linked to an existing address
func NewCustomer(firstName, lastName, nationalID, phone, email string, addressID uuid.UUID) (*Customer, error) {
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if nationalID == "" {
		return nil, shared.NewDomainError("INVALID_NATIONAL_ID", "National ID cannot be empty")
	}
	if addressID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address ID cannot be empty")
	}
	return &Customer{
		BaseEntity:   shared.NewBaseEntity(),
		FirstName:    firstName,
		LastName:     lastName,
		NationalID:   nationalID,
		Phone:        phone,
		Email:        email,
		AddressID:    addressID,
		RegisteredAt: time.Now(),
	}, nil
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
