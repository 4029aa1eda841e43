package order

import (
	"errors"
	"fmt"

	"spice-and-soul/internal/catalog"
	"spice-and-soul/internal/models"
)

// ErrInvalidQuantity reports an out-of-range quantity reaching the cart or
// pricing components. The UI constrains quantities, so hitting this is a
// caller bug and it fails loudly instead of clamping.
var ErrInvalidQuantity = errors.New("invalid quantity")

// CartLine is one (item, quantity) pair in a cart. The menu item is copied
// into the line when it is first added, the way the storefront snapshots
// price and name at add-to-cart time.
type CartLine struct {
	Item     models.MenuItem
	Quantity int
}

// Cart is an ordered sequence of lines, insertion order preserved. A cart
// holds at most one line per item id. Carts belong to a single ordering
// session; all operations are pure and return the next cart state.
type Cart []CartLine

// AddItem merges delta units of item into the cart: an existing line for the
// same id has its quantity incremented, otherwise a new line is appended.
// A line whose quantity reaches zero is dropped.
func AddItem(cart Cart, item models.MenuItem, delta int) (Cart, error) {
	for i, line := range cart {
		if line.Item.ID != item.ID {
			continue
		}
		quantity := line.Quantity + delta
		if quantity < 0 {
			return nil, fmt.Errorf("%w: quantity for %q would become %d", ErrInvalidQuantity, item.ID, quantity)
		}
		if quantity == 0 {
			return RemoveItem(cart, item.ID), nil
		}
		next := append(Cart(nil), cart...)
		next[i].Quantity = quantity
		return next, nil
	}

	if delta < 0 {
		return nil, fmt.Errorf("%w: quantity for %q would become %d", ErrInvalidQuantity, item.ID, delta)
	}
	if delta == 0 {
		return cart, nil
	}
	return append(append(Cart(nil), cart...), CartLine{Item: item, Quantity: delta}), nil
}

// SetQuantity sets the quantity of the line for itemID. Zero or negative
// removes the line; setting a quantity for an absent item creates the line,
// inheriting name and price from the catalog.
func SetQuantity(cart Cart, cat *catalog.Catalog, itemID string, quantity int) (Cart, error) {
	if quantity <= 0 {
		return RemoveItem(cart, itemID), nil
	}

	for i, line := range cart {
		if line.Item.ID == itemID {
			next := append(Cart(nil), cart...)
			next[i].Quantity = quantity
			return next, nil
		}
	}

	item, err := cat.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	return append(append(Cart(nil), cart...), CartLine{Item: item, Quantity: quantity}), nil
}

// RemoveItem drops the line for itemID. Removing an absent item is a no-op.
func RemoveItem(cart Cart, itemID string) Cart {
	next := make(Cart, 0, len(cart))
	for _, line := range cart {
		if line.Item.ID != itemID {
			next = append(next, line)
		}
	}
	return next
}

// TotalItems counts units across all lines.
func TotalItems(cart Cart) int {
	total := 0
	for _, line := range cart {
		total += line.Quantity
	}
	return total
}

// SelectionMode tags which of the two ordering flows a selection came from.
type SelectionMode string

const (
	// ModeSingleItem is the order-page flow: one recipe with a quantity.
	ModeSingleItem SelectionMode = "single_item"
	// ModeCartLines is the menu-page flow: a multi-item cart.
	ModeCartLines SelectionMode = "cart_lines"
)

// Selection is the tagged union of the two ordering flows. Exactly one arm
// is meaningful for a given mode; the flows are never mixed within one form.
type Selection struct {
	Mode     SelectionMode
	ItemID   string // single-item mode
	Quantity int    // single-item mode
	Lines    Cart   // cart mode
}

// SingleSelection builds a single-item selection.
func SingleSelection(itemID string, quantity int) Selection {
	return Selection{Mode: ModeSingleItem, ItemID: itemID, Quantity: quantity}
}

// CartSelection builds a cart-mode selection.
func CartSelection(cart Cart) Selection {
	return Selection{Mode: ModeCartLines, Lines: cart}
}

// IsEmpty reports whether nothing has been selected yet. An empty selection
// is a valid, displayable state, not an error.
func (s Selection) IsEmpty() bool {
	switch s.Mode {
	case ModeCartLines:
		return len(s.Lines) == 0
	default:
		return s.ItemID == ""
	}
}
