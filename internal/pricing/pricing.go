// Package pricing derives cart totals. It owns no state: every figure is recomputed from
// the line items handed in.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the GST rate applied when none is configured.
var DefaultTaxRate = decimal.RequireFromString("0.09")

// Line is the priced view of a cart line: unit price in cents times quantity.
type Line struct {
	UnitPriceCents int64
	Quantity       int
}

// Totals are the derived figures for a set of lines, in cents.
type Totals struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	TaxCents      int64 `json:"tax_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// Compute sums the lines and applies taxRate. Tax is rounded half-up to the cent; an
// empty input yields zero totals. Amounts saturate at math.MaxInt64 instead of wrapping.
func Compute(lines []Line, taxRate decimal.Decimal) Totals {
	var subtotal int64
	for _, line := range lines {
		subtotal = addCents(subtotal, LineCents(line.UnitPriceCents, line.Quantity))
	}
	tax := Tax(subtotal, taxRate)
	return Totals{
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    addCents(subtotal, tax),
	}
}

// LineCents is unitPriceCents × quantity, saturating at math.MaxInt64. Non-positive
// inputs yield 0.
func LineCents(unitPriceCents int64, quantity int) int64 {
	if unitPriceCents <= 0 || quantity <= 0 {
		return 0
	}
	if unitPriceCents > math.MaxInt64/int64(quantity) {
		return math.MaxInt64
	}
	return unitPriceCents * int64(quantity)
}

func addCents(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// Tax applies rate to a subtotal in cents, rounding half-up. Subtotals are never
// negative, so decimal's half-away-from-zero rounding is half-up here.
func Tax(subtotalCents int64, rate decimal.Decimal) int64 {
	if subtotalCents == 0 || rate.IsZero() {
		return 0
	}
	tax := decimal.NewFromInt(subtotalCents).Mul(rate).Round(0)
	if tax.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return math.MaxInt64
	}
	return tax.IntPart()
}
