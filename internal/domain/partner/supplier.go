package partner

import (
	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/shared"
)

// SupplierContact is the contact person of a supplier company
type SupplierContact struct {
	shared.BaseEntity
	FirstName string    `gorm:"size:100;not null"`
	LastName  string    `gorm:"size:100;not null"`
	Phone     string    `gorm:"size:30"`
	Email     string    `gorm:"size:200"`
	AddressID uuid.UUID `gorm:"type:uuid;not null"`

	Address *Address `gorm:"foreignKey:AddressID"`
}

// TableName returns the table name for GORM
func (SupplierContact) TableName() string {
	return "supplier_contacts"
}

// NewSupplierContact creates a new supplier contact linked to an address
func NewSupplierContact(firstName, lastName, phone, email string, addressID uuid.UUID) (*SupplierContact, error) {
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Contact name cannot be empty")
	}
	if addressID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address ID cannot be empty")
	}
	return &SupplierContact{
		BaseEntity: shared.NewBaseEntity(),
		FirstName:  firstName,
		LastName:   lastName,
		Phone:      phone,
		Email:      email,
		AddressID:  addressID,
	}, nil
}

// Supplier represents a furniture supplier company.
// A supplier owns an address and a contact, and is linked to the furniture
// categories it supplies; all rows are created in one transaction.
type Supplier struct {
	shared.BaseEntity
	CompanyName string    `gorm:"size:200;not null"`
	AddressID   uuid.UUID `gorm:"type:uuid;not null"`
	ContactID   uuid.UUID `gorm:"type:uuid;not null"`

	Address    *Address           `gorm:"foreignKey:AddressID"`
	Contact    *SupplierContact   `gorm:"foreignKey:ContactID"`
	Categories []SupplierCategory `gorm:"foreignKey:SupplierID"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// SupplierCategory links a supplier to a furniture category it provides
type SupplierCategory struct {
	SupplierID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for GORM
func (SupplierCategory) TableName() string {
	return "supplier_categories"
}

// NewSupplier creates a new supplier company linked to an address and contact
func NewSupplier(companyName string, addressID, contactID uuid.UUID, categoryIDs []uuid.UUID) (*Supplier, error) {
	if companyName == "" {
		return nil, shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if addressID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address ID cannot be empty")
	}
	if contactID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CONTACT", "Contact ID cannot be empty")
	}

	s := &Supplier{
		BaseEntity:  shared.NewBaseEntity(),
		CompanyName: companyName,
		AddressID:   addressID,
		ContactID:   contactID,
	}
	for _, categoryID := range categoryIDs {
		s.Categories = append(s.Categories, SupplierCategory{
			SupplierID: s.ID,
			CategoryID: categoryID,
		})
	}
	return s, nil
}
