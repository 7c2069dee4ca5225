// Package money converts between integer cents and display amounts.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FromCents returns the major-unit decimal for an amount in cents.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Shift(-2)
}

// Format renders cents as a two-decimal amount behind symbol, e.g. "S$12.50".
func Format(symbol string, cents int64) string {
	amount := FromCents(cents)
	if amount.IsNegative() {
		return "-" + symbol + amount.Neg().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}

// ParseCents converts a major-unit string such as "12.50" into cents. More than two
// fractional digits and negative values are rejected.
func ParseCents(raw string) (int64, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", raw, err)
	}
	if value.IsNegative() {
		return 0, fmt.Errorf("amount %q must be non-negative", raw)
	}
	cents := value.Shift(2)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("amount %q has more than two decimal places", raw)
	}
	return cents.IntPart(), nil
}
