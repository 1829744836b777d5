package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// SaleLine is one product-quantity entry within a sale. A line never exists
// without its parent sale. The unit price is resolved from the product at
// creation time, not taken from the caller.
type SaleLine struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null;check:quantity > 0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SaleLine) TableName() string {
	return "sale_lines"
}

// LineTotal returns quantity times unit price
func (l *SaleLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Sale is the aggregate root for a committed sale. It is created once and
// never updated or deleted afterwards.
type Sale struct {
	shared.BaseEntity
	SellerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	SoldAt     time.Time       `gorm:"not null;index"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	Lines []SaleLine `gorm:"foreignKey:SaleID"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a sale header. The timestamp is server-assigned; lines are
// added through AddLine and the total is derived from them.
func NewSale(sellerID, customerID uuid.UUID) (*Sale, error) {
	if sellerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SELLER", "Seller ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	return &Sale{
		BaseEntity: shared.NewBaseEntity(),
		SellerID:   sellerID,
		CustomerID: customerID,
		SoldAt:     time.Now(),
		TotalPrice: decimal.Zero,
	}, nil
}

// AddLine appends a line and rolls its total into the sale total
func (s *Sale) AddLine(productID uuid.UUID, quantity int, unitPrice valueobject.Money) (*SaleLine, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	line := SaleLine{
		ID:        uuid.New(),
		SaleID:    s.ID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice.Amount(),
		CreatedAt: time.Now(),
	}
	s.Lines = append(s.Lines, line)
	s.TotalPrice = s.TotalPrice.Add(line.LineTotal())
	s.Touch()
	return &s.Lines[len(s.Lines)-1], nil
}

// ComputedTotal returns the sum of all line totals. It always equals
// TotalPrice for sales built through AddLine.
func (s *Sale) ComputedTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range s.Lines {
		total = total.Add(s.Lines[i].LineTotal())
	}
	return total
}

// TotalUnits returns the number of units across all lines
func (s *Sale) TotalUnits() int {
	units := 0
	for i := range s.Lines {
		units += s.Lines[i].Quantity
	}
	return units
}
