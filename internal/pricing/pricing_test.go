package pricing

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeScenarioFromCounter(t *testing.T) {
	lines := []Line{
		{UnitPriceCents: 1250, Quantity: 2},
		{UnitPriceCents: 850, Quantity: 1},
	}

	got := Compute(lines, DefaultTaxRate)

	assert.Equal(t, Totals{SubtotalCents: 3350, TaxCents: 302, TotalCents: 3652}, got)
}

func TestComputeEmptyIsZero(t *testing.T) {
	assert.Equal(t, Totals{}, Compute(nil, DefaultTaxRate))
	assert.Equal(t, Totals{}, Compute([]Line{}, DefaultTaxRate))
}

func TestComputeIsIdempotent(t *testing.T) {
	lines := []Line{
		{UnitPriceCents: 1580, Quantity: 3},
		{UnitPriceCents: 150, Quantity: 7},
	}
	first := Compute(lines, DefaultTaxRate)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Compute(lines, DefaultTaxRate))
	}
}

func TestTaxRoundsHalfUp(t *testing.T) {
	cases := []struct {
		subtotal int64
		rate     string
		want     int64
	}{
		{subtotal: 3350, rate: "0.09", want: 302},
		{subtotal: 50, rate: "0.09", want: 5},
		{subtotal: 49, rate: "0.09", want: 4},
		{subtotal: 1000, rate: "0", want: 0},
		{subtotal: 150, rate: "0.07", want: 11},
		{subtotal: 1111, rate: "0.09", want: 100},
	}
	for _, tc := range cases {
		got := Tax(tc.subtotal, decimal.RequireFromString(tc.rate))
		assert.Equalf(t, tc.want, got, "Tax(%d, %s)", tc.subtotal, tc.rate)
	}
}

func TestComputeTotalIsSubtotalPlusTax(t *testing.T) {
	lines := []Line{{UnitPriceCents: 999, Quantity: 13}}
	got := Compute(lines, decimal.RequireFromString("0.09"))
	assert.Equal(t, got.SubtotalCents+got.TaxCents, got.TotalCents)
	assert.Equal(t, int64(12987), got.SubtotalCents)
}

func TestComputeSaturatesInsteadOfOverflowing(t *testing.T) {
	lines := []Line{
		{UnitPriceCents: 1250, Quantity: math.MaxInt64 / 1000},
		{UnitPriceCents: math.MaxInt64 / 2, Quantity: 3},
	}

	got := Compute(lines, DefaultTaxRate)

	assert.Equal(t, int64(math.MaxInt64), got.SubtotalCents)
	assert.Equal(t, int64(math.MaxInt64), got.TotalCents)
	assert.Positive(t, got.TaxCents)
}

func TestLineCents(t *testing.T) {
	assert.Equal(t, int64(2500), LineCents(1250, 2))
	assert.Equal(t, int64(0), LineCents(1250, 0))
	assert.Equal(t, int64(0), LineCents(-5, 3))
	assert.Equal(t, int64(math.MaxInt64), LineCents(math.MaxInt64/2, 3))
}
