package catalog

import (
	"errors"
	"fmt"

	"spice-and-soul/internal/models"
)

// ErrItemNotFound is returned when an item id is not on the menu.
var ErrItemNotFound = errors.New("menu item not found")

// Catalog is the fixed set of orderable menu items. It is constructed once
// and handed to the components that need it; there is no package-level
// catalog state.
type Catalog struct {
	items []models.MenuItem
	byID  map[string]models.MenuItem
}

// New builds a catalog from a fixed item list. Item order is preserved for
// display; ids must be unique.
func New(items []models.MenuItem) (*Catalog, error) {
	byID := make(map[string]models.MenuItem, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("menu item %q has empty id", item.Name)
		}
		if _, ok := byID[item.ID]; ok {
			return nil, fmt.Errorf("duplicate menu item id %q", item.ID)
		}
		if item.Price.Amount.IsNegative() {
			return nil, fmt.Errorf("menu item %q has negative price", item.ID)
		}
		byID[item.ID] = item
	}

	return &Catalog{
		items: append([]models.MenuItem(nil), items...),
		byID:  byID,
	}, nil
}

// ListItems returns all menu items in display order.
func (c *Catalog) ListItems() []models.MenuItem {
	return append([]models.MenuItem(nil), c.items...)
}

// GetItem looks up a menu item by id.
func (c *Catalog) GetItem(id string) (models.MenuItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return models.MenuItem{}, fmt.Errorf("item %q: %w", id, ErrItemNotFound)
	}
	return item, nil
}

// Len reports how many items are on the menu.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Default returns the Spice & Soul menu.
func Default() *Catalog {
	c, err := New([]models.MenuItem{
		{
			ID:          "butter-chicken",
			Name:        "Butter Chicken Masala",
			Price:       models.USDFromString("24.99"),
			Description: "Creamy, aromatic dish with tender chicken in rich tomato-based gravy",
			PrepTime:    "30 min",
			Difficulty:  models.DifficultyMedium,
			Category:    "Main Course",
		},
		{
			ID:          "biryani",
			Name:        "Chicken Biryani",
			Price:       models.USDFromString("28.99"),
			Description: "Fragrant rice dish with tender chicken and aromatic spices",
			PrepTime:    "45 min",
			Difficulty:  models.DifficultyHard,
			Category:    "Main Course",
		},
		{
			ID:          "dal-makhani",
			Name:        "Dal Makhani",
			Price:       models.USDFromString("18.99"),
			Description: "Creamy black lentils slow-cooked with spices and butter",
			PrepTime:    "25 min",
			Difficulty:  models.DifficultyEasy,
			Category:    "Main Course",
		},
		{
			ID:          "naan",
			Name:        "Garlic Naan",
			Price:       models.USDFromString("8.99"),
			Description: "Soft, fluffy bread brushed with garlic butter",
			PrepTime:    "15 min",
			Difficulty:  models.DifficultyEasy,
			Category:    "Bread",
		},
		{
			ID:          "samosa",
			Name:        "Vegetable Samosa",
			Price:       models.USDFromString("8.99"),
			Description: "Crispy pastry filled with spiced potatoes, peas, and aromatic spices",
			PrepTime:    "20 min",
			Difficulty:  models.DifficultyEasy,
			Category:    "Appetizer",
		},
		{
			ID:          "mango-lassi",
			Name:        "Mango Lassi",
			Price:       models.USDFromString("4.99"),
			Description: "Refreshing yogurt-based drink with sweet mango and cardamom",
			PrepTime:    "5 min",
			Difficulty:  models.DifficultyEasy,
			Category:    "Beverage",
		},
		{
			ID:          "gulab-jamun",
			Name:        "Gulab Jamun",
			Price:       models.USDFromString("6.99"),
			Description: "Sweet, spongy milk-solid balls soaked in rose-flavored sugar syrup",
			PrepTime:    "15 min",
			Difficulty:  models.DifficultyMedium,
			Category:    "Dessert",
		},
	})
	if err != nil {
		// Default items are static; a bad entry is a programming error.
		panic(err)
	}
	return c
}
