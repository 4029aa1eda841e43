package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestMoney_Mul(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		quantity int
		want     string
	}{
		{name: "single unit", price: "24.99", quantity: 1, want: "24.99"},
		{name: "no binary drift", price: "24.99", quantity: 3, want: "74.97"},
		{name: "zero units", price: "18.99", quantity: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := USDFromString(tt.price).Mul(tt.quantity)
			assert.True(t, got.Amount.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got.Amount, tt.want)
			assert.Equal(t, currency.USD, got.Currency)
		})
	}
}

func TestMoney_Add(t *testing.T) {
	sum, err := USDFromString("24.99").Add(USDFromString("5.99"))
	require.NoError(t, err)
	assert.True(t, sum.Amount.Equal(decimal.RequireFromString("30.98")))

	eur := Money{Amount: decimal.New(1, 0), Currency: currency.EUR}
	_, err = USDFromString("1.00").Add(eur)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "currency mismatch")
}

func TestMoney_Format(t *testing.T) {
	assert.Equal(t, "$24.99", USDFromString("24.99").Format())
	assert.Equal(t, "$5.00", USDFromString("5").Format())

	eur := Money{Amount: decimal.RequireFromString("9.5"), Currency: currency.EUR}
	assert.Equal(t, "9.50 EUR", eur.Format())
}
