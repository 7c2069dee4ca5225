package orders

import (
	"errors"
	"fmt"

	"github.com/jatansg/sgfoodcourt/pkg/enums"
)

var (
	ErrEmptyCart                = errors.New("cart is empty")
	ErrMissingPaymentMethod     = errors.New("payment method is required")
	ErrUnsupportedPaymentMethod = errors.New("payment method is not supported")
	ErrOrderNotFound            = errors.New("order not found")
	ErrIllegalTransition        = errors.New("illegal status transition")
)

// IllegalTransitionError names the edge that was refused. It matches ErrIllegalTransition
// under errors.Is.
type IllegalTransitionError struct {
	From enums.OrderStatus
	To   enums.OrderStatus
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}
