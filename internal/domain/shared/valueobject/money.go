package valueobject

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	CLP Currency = "CLP" // Chilean Peso (default)
	USD Currency = "USD" // US Dollar
)

// DefaultCurrency is the default currency for the system
const DefaultCurrency = CLP

// Money is a value object representing monetary amounts.
// It is immutable - all operations return new Money instances.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a new Money with the specified amount and currency
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{amount: amount, currency: currency}, nil
}

// NewMoneyCLP creates Money in CLP (Chilean Peso)
func NewMoneyCLP(amount decimal.Decimal) Money {
	return Money{amount: amount, currency: CLP}
}

// NewMoneyCLPFromFloat creates Money in CLP from float64
func NewMoneyCLPFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount), currency: CLP}
}

// ZeroCLP returns a zero-value Money in CLP
func ZeroCLP() Money {
	return Money{amount: decimal.Zero, currency: CLP}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of two Money values of the same currency
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errors.New("cannot add money of different currencies")
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Mul returns the Money multiplied by an integer factor
func (m Money) Mul(factor int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(factor)), currency: m.currency}
}

// Equals reports whether two Money values have the same amount and currency
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsNegative reports whether the amount is negative
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Float64 returns the amount as float64 (for API responses)
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}
