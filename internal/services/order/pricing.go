package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"spice-and-soul/internal/catalog"
	"spice-and-soul/internal/models"
)

// DeliveryFee is the flat fee applied to every order. It is not waived at
// any threshold and is not configurable per order.
var DeliveryFee = decimal.RequireFromString("5.99")

// SummaryLine is one priced line of an order summary.
type SummaryLine struct {
	Name      string
	UnitPrice models.Money
	Quantity  int
	LineTotal models.Money
}

// OrderSummary is a projection derived from the current selection and the
// catalog. It is recomputed on every read and never persisted.
type OrderSummary struct {
	Subtotal    models.Money
	DeliveryFee models.Money
	Total       models.Money
	Lines       []SummaryLine
}

// LineTotal computes price * quantity for one cart line with exact decimal
// arithmetic.
func LineTotal(line CartLine) (models.Money, error) {
	if line.Quantity < 1 {
		return models.Money{}, fmt.Errorf("%w: %d for %q", ErrInvalidQuantity, line.Quantity, line.Item.ID)
	}
	return line.Item.Price.Mul(line.Quantity), nil
}

// Subtotal sums the line totals of a cart.
func Subtotal(cart Cart) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range cart {
		lineTotal, err := LineTotal(line)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(lineTotal.Amount)
	}
	return total, nil
}

// Total is the subtotal plus the flat delivery fee.
func Total(cart Cart) (decimal.Decimal, error) {
	subtotal, err := Subtotal(cart)
	if err != nil {
		return decimal.Zero, err
	}
	return subtotal.Add(DeliveryFee), nil
}

// BuildSummary derives the order summary for the current selection. A nil
// summary with a nil error means nothing is selected yet, which the UI
// renders as the empty state.
func BuildSummary(cat *catalog.Catalog, sel Selection) (*OrderSummary, error) {
	if sel.IsEmpty() {
		return nil, nil
	}

	cart := sel.Lines
	if sel.Mode == ModeSingleItem {
		item, err := cat.GetItem(sel.ItemID)
		if err != nil {
			return nil, err
		}
		cart = Cart{{Item: item, Quantity: sel.Quantity}}
	}

	summary := &OrderSummary{
		DeliveryFee: models.USD(DeliveryFee),
		Lines:       make([]SummaryLine, 0, len(cart)),
	}

	subtotal := decimal.Zero
	for _, line := range cart {
		lineTotal, err := LineTotal(line)
		if err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(lineTotal.Amount)
		summary.Lines = append(summary.Lines, SummaryLine{
			Name:      line.Item.Name,
			UnitPrice: line.Item.Price,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
	}

	summary.Subtotal = models.USD(subtotal)
	summary.Total = models.USD(subtotal.Add(DeliveryFee))
	return summary, nil
}
