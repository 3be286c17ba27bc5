// Package money provides currency-safe amounts using integer cents and the
// Fowler Money pattern. Receipt tokens are parsed through shopspring/decimal so
// two amounts are equal exactly when their cents are equal - never by comparing
// floats.
package money

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// AUD is the default currency for receipt amounts.
const AUD = "AUD"

// Money represents a monetary value with currency. It wraps go-money for safe
// arithmetic and shopspring/decimal for precise conversion.
type Money struct {
	m *money.Money
}

// New creates a Money value from cents (minor units) and currency code.
func New(cents int64, currencyCode string) *Money {
	return &Money{m: money.New(cents, currencyCode)}
}

// NewFromDecimal creates Money from a decimal value.
func NewFromDecimal(amount decimal.Decimal, currencyCode string) *Money {
	currency := money.GetCurrency(currencyCode)
	if currency == nil {
		currency = money.GetCurrency(AUD)
	}

	multiplier := decimal.New(1, int32(currency.Fraction))
	cents := amount.Mul(multiplier).Round(0).IntPart()

	return New(cents, currencyCode)
}

// ParseToken parses a receipt money token like "$1,234.56", "12.99" or
// "$ 49.50" into a Money value. Currency symbols, surrounding whitespace and
// thousands separators are stripped before decimal parsing.
func ParseToken(token, currencyCode string) (*Money, error) {
	cleaned := strings.TrimSpace(token)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid money token %q: %w", token, err)
	}

	return NewFromDecimal(d, currencyCode), nil
}

// Cents returns the amount in minor units.
func (m *Money) Cents() int64 {
	if m == nil || m.m == nil {
		return 0
	}
	return m.m.Amount()
}

// Currency returns the ISO-4217 currency code.
func (m *Money) Currency() string {
	if m == nil || m.m == nil {
		return ""
	}
	return m.m.Currency().Code
}

// IsZero returns true if the amount is zero.
func (m *Money) IsZero() bool {
	return m == nil || m.m == nil || m.m.IsZero()
}

// IsPositive returns true if the amount is greater than zero.
func (m *Money) IsPositive() bool {
	return m != nil && m.m != nil && m.m.IsPositive()
}

// Equals compares two amounts by exact cents and currency.
func (m *Money) Equals(other *Money) bool {
	if m == nil || m.m == nil || other == nil || other.m == nil {
		return m.IsZero() && other.IsZero()
	}
	eq, _ := m.m.Equals(other.m)
	return eq
}

// ToDecimal converts to a decimal for precise calculations.
func (m *Money) ToDecimal() decimal.Decimal {
	if m == nil || m.m == nil {
		return decimal.Zero
	}
	d := decimal.NewFromInt(m.m.Amount())
	divisor := decimal.New(1, int32(m.m.Currency().Fraction))
	return d.Div(divisor)
}

// String returns the amount as a plain decimal string with the currency's
// fraction digits and no symbol, e.g. "49.50".
func (m *Money) String() string {
	if m == nil || m.m == nil {
		return "0.00"
	}
	return m.ToDecimal().StringFixed(int32(m.m.Currency().Fraction))
}

// Display returns a formatted string for display, e.g. "$1,234.56".
func (m *Money) Display() string {
	if m == nil || m.m == nil {
		return "$0.00"
	}
	return m.m.Display()
}
