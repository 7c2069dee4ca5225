package cart

import (
	"errors"
	"math"
	"testing"

	"github.com/jatansg/sgfoodcourt/internal/catalog"
	"github.com/jatansg/sgfoodcourt/internal/pricing"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pork  = catalog.Item{ID: "item1", Name: "Sweet & Sour Pork", UnitPriceCents: 1250, StallID: "stall1", Category: "Main", Available: true}
	rice  = catalog.Item{ID: "item2", Name: "Yang Chow Fried Rice", UnitPriceCents: 850, StallID: "stall1", Category: "Rice", Available: true}
	laksa = catalog.Item{ID: "item5", Name: "Laksa", UnitPriceCents: 600, StallID: "stall2", Category: "Noodles", Available: true}
)

func TestAddItemMergesSameItem(t *testing.T) {
	c := New(pricing.DefaultTaxRate)

	c.AddItem(pork)
	line := c.AddItem(pork)
	c.AddItem(rice)

	assert.Equal(t, 2, line.Quantity)
	require.Len(t, c.Lines(), 2)
	assert.Equal(t, "item1", c.Lines()[0].Item.ID)
	assert.Equal(t, "item2", c.Lines()[1].Item.ID)
	assert.Equal(t, 3, c.ItemCount())
}

func TestCounterScenarioTotals(t *testing.T) {
	c := New(pricing.DefaultTaxRate)
	c.AddItem(pork)
	c.AddItem(pork)
	c.AddItem(rice)

	assert.Equal(t, pricing.Totals{SubtotalCents: 3350, TaxCents: 302, TotalCents: 3652}, c.Totals())
}

func TestAddSetRemoveLeavesEmptyCart(t *testing.T) {
	c := New(pricing.DefaultTaxRate)
	c.AddItem(pork)
	c.AddItem(pork)

	require.NoError(t, c.SetQuantity(pork.ID, 1))
	line, ok := c.Line(pork.ID)
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)

	assert.True(t, c.RemoveItem(pork.ID))
	assert.True(t, c.IsEmpty())
	assert.Equal(t, pricing.Totals{}, c.Totals())
}

func TestSetQuantityNegativeFails(t *testing.T) {
	c := New(pricing.DefaultTaxRate)
	c.AddItem(pork)

	err := c.SetQuantity(pork.ID, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidQuantity))
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))

	line, _ := c.Line(pork.ID)
	assert.Equal(t, 1, line.Quantity, "failed call leaves the line untouched")
}

func TestSetQuantityOnAbsentLine(t *testing.T) {
	c := New(pricing.DefaultTaxRate)

	require.NoError(t, c.SetQuantity("ghost", 0), "removal of an absent line is a no-op")

	err := c.SetQuantity("ghost", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrItemNotFound))
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.CodeOf(err))

	err = c.SetQuantity("ghost", -3)
	assert.True(t, errors.Is(err, ErrInvalidQuantity), "negative quantity wins over a missing line")
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	build := func() *Cart {
		c := New(pricing.DefaultTaxRate)
		c.AddItem(pork)
		c.AddItem(rice)
		c.AddItem(laksa)
		c.AddItem(rice)
		return c
	}

	viaSet := build()
	viaRemove := build()
	require.NoError(t, viaSet.SetQuantity(rice.ID, 0))
	viaRemove.RemoveItem(rice.ID)

	assert.Equal(t, viaRemove.Snapshot(), viaSet.Snapshot())
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	c := New(pricing.DefaultTaxRate)
	c.AddItem(pork)
	before := c.Snapshot()

	assert.False(t, c.RemoveItem("ghost"))
	assert.Equal(t, before, c.Snapshot())
}

func TestComputeIsIdempotentAndMatchesTotals(t *testing.T) {
	c := New(pricing.DefaultTaxRate)
	c.AddItem(laksa)
	c.AddItem(pork)
	require.NoError(t, c.SetQuantity(laksa.ID, 4))

	first := c.Compute()
	assert.Equal(t, first, c.Compute())
	assert.Equal(t, c.Totals(), first)
}

func TestReAddAfterRemoveAppendsAtEnd(t *testing.T) {
	c := New(pricing.DefaultTaxRate)
	c.AddItem(pork)
	c.AddItem(rice)
	c.RemoveItem(pork.ID)
	c.AddItem(pork)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, rice.ID, lines[0].Item.ID)
	assert.Equal(t, pork.ID, lines[1].Item.ID)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestClear(t *testing.T) {
	c := New(pricing.DefaultTaxRate)
	c.AddItem(pork)
	c.AddItem(rice)

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, pricing.Totals{}, c.Totals())
}

func TestSnapshotIsDetached(t *testing.T) {
	c := New(pricing.DefaultTaxRate)
	c.AddItem(pork)
	snap := c.Snapshot()

	c.AddItem(pork)
	require.NoError(t, c.SetQuantity(pork.ID, 9))

	assert.Equal(t, 1, snap.Lines[0].Quantity)
	assert.Equal(t, int64(1250), snap.Totals.SubtotalCents)
}

func TestSetQuantityAboveLimitFails(t *testing.T) {
	c := New(pricing.DefaultTaxRate)
	c.AddItem(pork)

	err := c.SetQuantity(pork.ID, math.MaxInt64/1000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidQuantity))
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))

	line, _ := c.Line(pork.ID)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, int64(1250), c.Totals().SubtotalCents)

	require.NoError(t, c.SetQuantity(pork.ID, MaxQuantity))
	assert.Equal(t, int64(1250*MaxQuantity), c.Totals().SubtotalCents)
	assert.Positive(t, c.Totals().TotalCents)
}

func TestAddItemStopsAtLimit(t *testing.T) {
	c := New(pricing.DefaultTaxRate)
	c.AddItem(pork)
	require.NoError(t, c.SetQuantity(pork.ID, MaxQuantity))
	require.True(t, c.Full(pork.ID))

	line := c.AddItem(pork)

	assert.Equal(t, MaxQuantity, line.Quantity)
	assert.Equal(t, MaxQuantity, c.ItemCount())
	assert.False(t, c.Full(rice.ID))
}
