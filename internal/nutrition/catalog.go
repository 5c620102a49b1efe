// Package nutrition aggregates meal entries into nutrient and cost totals.
package nutrition

import "github.com/theirongolddev/larder/internal/model"

// Catalog is a read-only index of food items by normalized id.
type Catalog struct {
	items []model.FoodItem
	index map[string]int
}

// NewCatalog indexes a copy of items. When two items share an id the first wins.
func NewCatalog(items []model.FoodItem) *Catalog {
	c := &Catalog{
		items: make([]model.FoodItem, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(c.items, items)
	for i, item := range c.items {
		key := model.NormalizeID(item.ID)
		if _, dup := c.index[key]; dup {
			continue
		}
		c.index[key] = i
	}
	return c
}

// Lookup returns the item whose id matches id under tolerant equality.
func (c *Catalog) Lookup(id model.FoodID) (model.FoodItem, bool) {
	if c == nil {
		return model.FoodItem{}, false
	}
	i, ok := c.index[model.NormalizeID(id)]
	if !ok || !model.SameID(c.items[i].ID, id) {
		return model.FoodItem{}, false
	}
	return c.items[i], true
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}
