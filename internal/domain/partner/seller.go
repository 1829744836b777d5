package partner

import (
	"github.com/muebleria/backend/internal/domain/shared"
)

// Seller represents a staff member who records sales.
// Sellers are referenced by sales and read-only from this module's perspective.
type Seller struct {
	shared.BaseEntity
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	Email     string `gorm:"size:200"`
}

// TableName returns the table name for GORM
func (Seller) TableName() string {
	return "sellers"
}

// FullName returns the seller's display name
func (s *Seller) FullName() string {
	return s.FirstName + " " + s.LastName
}
