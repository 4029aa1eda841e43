package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spice-and-soul/internal/catalog"
	"spice-and-soul/internal/models"
)

func menuItem(t *testing.T, id string) models.MenuItem {
	t.Helper()
	item, err := catalog.Default().GetItem(id)
	require.NoError(t, err)
	return item
}

func TestAddItem_MergesSameID(t *testing.T) {
	naan := menuItem(t, "naan")
	biryani := menuItem(t, "biryani")

	cart, err := AddItem(nil, naan, 1)
	require.NoError(t, err)
	cart, err = AddItem(cart, biryani, 1)
	require.NoError(t, err)

	// Adding an already-present item grows the line, not the cart.
	cart, err = AddItem(cart, naan, 1)
	require.NoError(t, err)

	require.Len(t, cart, 2)
	assert.Equal(t, "naan", cart[0].Item.ID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, "biryani", cart[1].Item.ID)
	assert.Equal(t, 3, TotalItems(cart))
}

func TestAddItem_NegativeDelta(t *testing.T) {
	naan := menuItem(t, "naan")

	cart, err := AddItem(nil, naan, 2)
	require.NoError(t, err)

	// Down to zero drops the line.
	cart, err = AddItem(cart, naan, -2)
	require.NoError(t, err)
	assert.Empty(t, cart)

	// Below zero is a contract violation.
	_, err = AddItem(cart, naan, -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestAddItem_Pure(t *testing.T) {
	naan := menuItem(t, "naan")

	original, err := AddItem(nil, naan, 1)
	require.NoError(t, err)

	_, err = AddItem(original, naan, 4)
	require.NoError(t, err)

	assert.Equal(t, 1, original[0].Quantity)
}

func TestSetQuantity(t *testing.T) {
	cat := catalog.Default()
	naan := menuItem(t, "naan")

	cart, err := AddItem(nil, naan, 1)
	require.NoError(t, err)

	tests := []struct {
		name      string
		itemID    string
		quantity  int
		wantLines int
		wantQty   int
		wantErr   bool
	}{
		{name: "update existing line", itemID: "naan", quantity: 5, wantLines: 1, wantQty: 5},
		{name: "create line from catalog", itemID: "samosa", quantity: 2, wantLines: 2, wantQty: 1},
		{name: "zero removes line", itemID: "naan", quantity: 0, wantLines: 0},
		{name: "negative removes line", itemID: "naan", quantity: -3, wantLines: 0},
		{name: "unknown item", itemID: "no-such-item", quantity: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := SetQuantity(cart, cat, tt.itemID, tt.quantity)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, next, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, next[0].Quantity)
			}
		})
	}
}

func TestSetQuantity_InheritsFromCatalog(t *testing.T) {
	cat := catalog.Default()

	cart, err := SetQuantity(nil, cat, "mango-lassi", 3)
	require.NoError(t, err)

	require.Len(t, cart, 1)
	assert.Equal(t, "Mango Lassi", cart[0].Item.Name)
	assert.Equal(t, "4.99", cart[0].Item.Price.Amount.String())
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	naan := menuItem(t, "naan")

	cart, err := AddItem(nil, naan, 1)
	require.NoError(t, err)

	cart = RemoveItem(cart, "naan")
	assert.Empty(t, cart)

	// Removing an absent item is a no-op.
	cart = RemoveItem(cart, "naan")
	assert.Empty(t, cart)
}

func TestSelection_IsEmpty(t *testing.T) {
	naan := menuItem(t, "naan")

	assert.True(t, SingleSelection("", 1).IsEmpty())
	assert.False(t, SingleSelection("naan", 1).IsEmpty())
	assert.True(t, CartSelection(nil).IsEmpty())
	assert.False(t, CartSelection(Cart{{Item: naan, Quantity: 1}}).IsEmpty())
}
