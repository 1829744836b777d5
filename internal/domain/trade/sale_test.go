package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSale(t *testing.T) {
	t.Run("creates sale with valid references", func(t *testing.T) {
		sellerID := uuid.New()
		customerID := uuid.New()

		sale, err := NewSale(sellerID, customerID)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, sale.ID)
		assert.Equal(t, sellerID, sale.SellerID)
		assert.Equal(t, customerID, sale.CustomerID)
		assert.True(t, sale.TotalPrice.IsZero())
		assert.Empty(t, sale.Lines)
		assert.False(t, sale.SoldAt.IsZero())
	})

	t.Run("fails with empty seller", func(t *testing.T) {
		_, err := NewSale(uuid.Nil, uuid.New())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_SELLER", domainErr.Code)
	})

	t.Run("fails with empty customer", func(t *testing.T) {
		_, err := NewSale(uuid.New(), uuid.Nil)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CUSTOMER", domainErr.Code)
	})
}

func TestSale_AddLine(t *testing.T) {
	newSale := func(t *testing.T) *Sale {
		sale, err := NewSale(uuid.New(), uuid.New())
		require.NoError(t, err)
		return sale
	}

	t.Run("adds line and rolls total", func(t *testing.T) {
		sale := newSale(t)
		productID := uuid.New()
		price := valueobject.NewMoneyCLPFromFloat(1500.50)

		line, err := sale.AddLine(productID, 2, price)

		require.NoError(t, err)
		assert.Equal(t, sale.ID, line.SaleID)
		assert.Equal(t, productID, line.ProductID)
		assert.Equal(t, 2, line.Quantity)
		assert.True(t, sale.TotalPrice.Equal(decimal.NewFromFloat(3001.00)))
	})

	t.Run("accumulates totals across lines", func(t *testing.T) {
		sale := newSale(t)

		_, err := sale.AddLine(uuid.New(), 1, valueobject.NewMoneyCLPFromFloat(100))
		require.NoError(t, err)
		_, err = sale.AddLine(uuid.New(), 3, valueobject.NewMoneyCLPFromFloat(50))
		require.NoError(t, err)

		assert.True(t, sale.TotalPrice.Equal(decimal.NewFromInt(250)))
		assert.True(t, sale.ComputedTotal().Equal(sale.TotalPrice))
		assert.Equal(t, 4, sale.TotalUnits())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		sale := newSale(t)

		_, err := sale.AddLine(uuid.New(), 0, valueobject.NewMoneyCLPFromFloat(100))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		sale := newSale(t)

		_, err := sale.AddLine(uuid.New(), -1, valueobject.NewMoneyCLPFromFloat(100))
		assert.Error(t, err)
	})

	t.Run("rejects empty product", func(t *testing.T) {
		sale := newSale(t)

		_, err := sale.AddLine(uuid.Nil, 1, valueobject.NewMoneyCLPFromFloat(100))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PRODUCT", domainErr.Code)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		sale := newSale(t)

		_, err := sale.AddLine(uuid.New(), 1, valueobject.NewMoneyCLPFromFloat(-10))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PRICE", domainErr.Code)
	})
}

func TestSaleLine_LineTotal(t *testing.T) {
	line := SaleLine{
		Quantity:  3,
		UnitPrice: decimal.NewFromFloat(19.99),
	}
	assert.True(t, line.LineTotal().Equal(decimal.NewFromFloat(59.97)))
}
