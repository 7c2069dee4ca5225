// Package cart is the line-item store behind the customer cart and the POS ticket.
package cart

import (
	"slices"

	"github.com/jatansg/sgfoodcourt/internal/catalog"
	"github.com/jatansg/sgfoodcourt/internal/pricing"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/shopspring/decimal"
)

// MaxQuantity caps how many units of one item a line may hold.
const MaxQuantity = 999

// Line is one catalog item and how many of it the cart holds. Quantity is always within
// [1, MaxQuantity].
type Line struct {
	Item     catalog.Item
	Quantity int
}

// TotalCents is the undiscounted line amount.
func (l Line) TotalCents() int64 {
	return pricing.LineCents(l.Item.UnitPriceCents, l.Quantity)
}

// Cart keeps at most one line per catalog item, in insertion order, and recomputes its
// totals before any mutating call returns. A Cart is not safe for concurrent use; the
// owning session serialises access.
type Cart struct {
	taxRate decimal.Decimal
	order   []string
	lines   map[string]*Line
	totals  pricing.Totals
}

// New returns an empty cart that prices at taxRate.
func New(taxRate decimal.Decimal) *Cart {
	return &Cart{
		taxRate: taxRate,
		lines:   make(map[string]*Line),
	}
}

// AddItem adds one unit of item, creating the line if needed, and returns the line. A
// line already at MaxQuantity is returned unchanged; use Full to detect that first.
func (c *Cart) AddItem(item catalog.Item) Line {
	line, ok := c.lines[item.ID]
	if ok {
		if line.Quantity >= MaxQuantity {
			return *line
		}
		line.Quantity++
	} else {
		line = &Line{Item: item, Quantity: 1}
		c.lines[item.ID] = line
		c.order = append(c.order, item.ID)
	}
	c.recompute()
	return *line
}

// Full reports whether the line for itemID is already at MaxQuantity.
func (c *Cart) Full(itemID string) bool {
	line, ok := c.lines[itemID]
	return ok && line.Quantity >= MaxQuantity
}

// SetQuantity overwrites the quantity of a line. Zero removes the line (a no-op when it
// is absent). Quantities below zero or above MaxQuantity fail with ErrInvalidQuantity and
// positive quantities on an absent line fail with ErrItemNotFound.
func (c *Cart) SetQuantity(itemID string, quantity int) error {
	if quantity < 0 {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, ErrInvalidQuantity, "quantity must not be negative").
			WithDetails(map[string]any{"item_id": itemID, "quantity": quantity})
	}
	if quantity > MaxQuantity {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, ErrInvalidQuantity, "quantity is above the per-line limit").
			WithDetails(map[string]any{"item_id": itemID, "quantity": quantity, "max": MaxQuantity})
	}
	if quantity == 0 {
		c.RemoveItem(itemID)
		return nil
	}
	line, ok := c.lines[itemID]
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrItemNotFound, "item is not in the cart").
			WithDetails(map[string]any{"item_id": itemID})
	}
	line.Quantity = quantity
	c.recompute()
	return nil
}

// RemoveItem deletes the line for itemID and reports whether one existed.
func (c *Cart) RemoveItem(itemID string) bool {
	if _, ok := c.lines[itemID]; !ok {
		return false
	}
	delete(c.lines, itemID)
	c.order = slices.DeleteFunc(c.order, func(id string) bool { return id == itemID })
	c.recompute()
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = make(map[string]*Line)
	c.order = nil
	c.recompute()
}

// Line returns the line for itemID.
func (c *Cart) Line(itemID string) (Line, bool) {
	line, ok := c.lines[itemID]
	if !ok {
		return Line{}, false
	}
	return *line, true
}

// Lines returns copies of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Totals returns the figures computed by the last mutation.
func (c *Cart) Totals() pricing.Totals {
	return c.totals
}

// Compute derives totals from the current lines without touching cart state.
func (c *Cart) Compute() pricing.Totals {
	return pricing.Compute(c.pricedLines(), c.taxRate)
}

// TaxRate is the rate the cart prices at.
func (c *Cart) TaxRate() decimal.Decimal {
	return c.taxRate
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.order)
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.order) == 0
}

// ItemCount is the sum of quantities across lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Snapshot captures the lines and totals as plain values.
func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		Lines:     c.Lines(),
		Totals:    c.totals,
		TaxRate:   c.taxRate,
		ItemCount: c.ItemCount(),
	}
}

func (c *Cart) recompute() {
	c.totals = c.Compute()
}

func (c *Cart) pricedLines() []pricing.Line {
	priced := make([]pricing.Line, 0, len(c.order))
	for _, id := range c.order {
		line := c.lines[id]
		priced = append(priced, pricing.Line{
			UnitPriceCents: line.Item.UnitPriceCents,
			Quantity:       line.Quantity,
		})
	}
	return priced
}

// Snapshot is an immutable copy of a cart's state.
type Snapshot struct {
	Lines     []Line
	Totals    pricing.Totals
	TaxRate   decimal.Decimal
	ItemCount int
}

// IsEmpty reports whether the snapshot holds no lines.
func (s Snapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}
