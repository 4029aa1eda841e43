package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spice-and-soul/internal/models"
)

func TestDefault(t *testing.T) {
	c := Default()

	items := c.ListItems()
	require.Equal(t, c.Len(), len(items))
	require.NotEmpty(t, items)

	// Display order is the declaration order.
	assert.Equal(t, "butter-chicken", items[0].ID)

	item, err := c.GetItem("biryani")
	require.NoError(t, err)
	assert.Equal(t, "Chicken Biryani", item.Name)
	assert.Equal(t, "28.99", item.Price.Amount.String())
	assert.Equal(t, models.DifficultyHard, item.Difficulty)
}

func TestGetItem_NotFound(t *testing.T) {
	c := Default()

	_, err := c.GetItem("no-such-item")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		items []models.MenuItem
	}{
		{
			name: "duplicate id",
			items: []models.MenuItem{
				{ID: "naan", Name: "Naan", Price: models.USDFromString("3.99")},
				{ID: "naan", Name: "Garlic Naan", Price: models.USDFromString("8.99")},
			},
		},
		{
			name:  "empty id",
			items: []models.MenuItem{{Name: "Mystery Dish", Price: models.USDFromString("9.99")}},
		},
		{
			name:  "negative price",
			items: []models.MenuItem{{ID: "free", Name: "Free Lunch", Price: models.USDFromString("-1.00")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items)
			assert.Error(t, err)
		})
	}
}

func TestListItems_CopyIsolated(t *testing.T) {
	c := Default()

	items := c.ListItems()
	items[0].Name = "Mutated"

	again := c.ListItems()
	assert.NotEqual(t, "Mutated", again[0].Name)
}
