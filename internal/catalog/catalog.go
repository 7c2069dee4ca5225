// Package catalog holds the read-only stall and menu data that carts are filled from.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
)

// Catalog is loaded once at startup and never mutated afterwards, so it is safe for
// concurrent readers without locking.
type Catalog struct {
	stalls    []Stall
	stallByID map[string]int
	items     []Item
	itemByID  map[string]int
}

// New validates stalls and items together: ids must be unique and every item must
// reference a known stall.
func New(stalls []Stall, items []Item) (*Catalog, error) {
	c := &Catalog{
		stallByID: make(map[string]int, len(stalls)),
		itemByID:  make(map[string]int, len(items)),
	}

	var errs error
	for _, raw := range stalls {
		stall, err := NewStall(raw)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if _, dup := c.stallByID[stall.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate stall id %q", stall.ID))
			continue
		}
		c.stallByID[stall.ID] = len(c.stalls)
		c.stalls = append(c.stalls, stall)
	}

	for _, raw := range items {
		item, err := NewItem(raw)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if _, dup := c.itemByID[item.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate item id %q", item.ID))
			continue
		}
		if _, ok := c.stallByID[item.StallID]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("item %q references unknown stall %q", item.ID, item.StallID))
			continue
		}
		c.itemByID[item.ID] = len(c.items)
		c.items = append(c.items, item)
	}

	if errs != nil {
		return nil, errs
	}
	return c, nil
}

// Stalls returns every stall in load order.
func (c *Catalog) Stalls() []Stall {
	out := make([]Stall, len(c.stalls))
	copy(out, c.stalls)
	return out
}

// Stall looks up a stall by id.
func (c *Catalog) Stall(id string) (Stall, bool) {
	idx, ok := c.stallByID[id]
	if !ok {
		return Stall{}, false
	}
	return c.stalls[idx], true
}

// Item looks up an item by id.
func (c *Catalog) Item(id string) (Item, bool) {
	idx, ok := c.itemByID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[idx], true
}

// ItemFilter narrows Items. Zero values match everything.
type ItemFilter struct {
	StallID  string
	Category string
	// Search matches item or stall names, case-insensitively.
	Search        string
	AvailableOnly bool
}

// Items returns the items matching filter in load order.
func (c *Catalog) Items(filter ItemFilter) []Item {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]Item, 0, len(c.items))
	for _, item := range c.items {
		if filter.StallID != "" && item.StallID != filter.StallID {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(item.Category, filter.Category) {
			continue
		}
		if filter.AvailableOnly && !c.Orderable(item) {
			continue
		}
		if search != "" && !c.matchesSearch(item, search) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Orderable reports whether item may go into a cart: it must be available and its
// stall must be trading.
func (c *Catalog) Orderable(item Item) bool {
	if !item.Available {
		return false
	}
	stall, ok := c.Stall(item.StallID)
	return ok && stall.IsActive()
}

// Categories returns the distinct item categories, sorted.
func (c *Catalog) Categories() []string {
	seen := map[string]struct{}{}
	for _, item := range c.items {
		seen[item.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for category := range seen {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

func (c *Catalog) matchesSearch(item Item, needle string) bool {
	if strings.Contains(strings.ToLower(item.Name), needle) {
		return true
	}
	if stall, ok := c.Stall(item.StallID); ok {
		return strings.Contains(strings.ToLower(stall.Name), needle)
	}
	return false
}
