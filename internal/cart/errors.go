package cart

import "errors"

var (
	// ErrInvalidQuantity is returned for quantities outside [0, MaxQuantity].
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrItemNotFound is returned when a positive quantity targets a line the cart does
	// not hold.
	ErrItemNotFound = errors.New("line item not found")
)
