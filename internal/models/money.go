package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money is an exact decimal amount in a single currency. All price math in
// the storefront goes through Money so that price * quantity sums never pick
// up binary floating point drift.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// USD wraps a decimal amount as US dollars, the storefront's only currency.
func USD(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: currency.USD}
}

// USDFromString parses a price literal like "24.99" into Money.
// It panics on malformed input and is meant for static catalog data.
func USDFromString(s string) Money {
	return USD(decimal.RequireFromString(s))
}

// Mul returns the line total for quantity units of m.
func (m Money) Mul(quantity int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(quantity))),
		Currency: m.Currency,
	}
}

// Add sums two amounts. Both operands must carry the same currency unit.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Format renders the amount for display with 2-digit rounding, e.g. "$24.99".
// Non-dollar units fall back to the ISO code suffix form.
func (m Money) Format() string {
	if m.Currency == currency.USD {
		return "$" + m.Amount.StringFixed(2)
	}
	return m.Amount.StringFixed(2) + " " + m.Currency.String()
}

func (m Money) String() string {
	return m.Format()
}
