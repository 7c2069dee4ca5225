// Package dto shapes engine values for the JSON API.
package dto

import "github.com/jatansg/sgfoodcourt/pkg/money"

// Amount carries integer cents for clients that compute and a preformatted string for
// clients that only display.
type Amount struct {
	Cents   int64  `json:"cents"`
	Display string `json:"display"`
}

// Presenter formats amounts in the configured currency.
type Presenter struct {
	CurrencySymbol string
}

func (p Presenter) Amount(cents int64) Amount {
	return Amount{Cents: cents, Display: money.Format(p.CurrencySymbol, cents)}
}
