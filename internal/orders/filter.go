package orders

import (
	"strings"

	"github.com/jatansg/sgfoodcourt/pkg/enums"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
)

// Filter narrows List. Zero values match everything.
type Filter struct {
	Status    enums.OrderStatus
	StallID   string
	SessionID string
	// Search matches the order number or customer name, case-insensitively.
	Search string
}

// Matches reports whether order passes every set criterion.
func (f Filter) Matches(order Order) bool {
	if f.Status != "" && order.Status != f.Status {
		return false
	}
	if f.StallID != "" && !order.HasStall(f.StallID) {
		return false
	}
	if f.SessionID != "" && order.SessionID != f.SessionID {
		return false
	}
	if needle := strings.ToLower(strings.TrimSpace(f.Search)); needle != "" {
		if !strings.Contains(strings.ToLower(order.Number), needle) &&
			!strings.Contains(strings.ToLower(order.CustomerName), needle) {
			return false
		}
	}
	return true
}

// Scope is who is looking at the order board. Coffee-shop owners see every stall,
// stall owners see orders touching their stall, customers see their own session's
// orders.
type Scope struct {
	Role      enums.ActorRole
	StallID   string
	SessionID string
}

// Validate checks that the scope carries the identifiers its role needs.
func (s Scope) Validate() error {
	switch s.Role {
	case enums.ActorRoleCoffeeShopOwner:
		return nil
	case enums.ActorRoleStallOwner:
		if strings.TrimSpace(s.StallID) == "" {
			return pkgerrors.New(pkgerrors.CodeForbidden, "stall context required")
		}
		return nil
	case enums.ActorRoleCustomer:
		if strings.TrimSpace(s.SessionID) == "" {
			return pkgerrors.New(pkgerrors.CodeForbidden, "session context required")
		}
		return nil
	default:
		return pkgerrors.New(pkgerrors.CodeForbidden, "unknown actor role")
	}
}

// Restrict narrows f to what the scope may see. Role constraints override whatever the
// caller asked for.
func (s Scope) Restrict(f Filter) Filter {
	switch s.Role {
	case enums.ActorRoleStallOwner:
		f.StallID = s.StallID
	case enums.ActorRoleCustomer:
		f.SessionID = s.SessionID
	}
	return f
}

// CanView reports whether the scope may see order.
func (s Scope) CanView(order Order) bool {
	switch s.Role {
	case enums.ActorRoleCoffeeShopOwner:
		return true
	case enums.ActorRoleStallOwner:
		return order.HasStall(s.StallID)
	case enums.ActorRoleCustomer:
		return s.SessionID != "" && order.SessionID == s.SessionID
	}
	return false
}

// CanRequest reports whether the scope may ask for order to move to target. Customers
// may only cancel; whether the move is legal is still up to the lifecycle.
func (s Scope) CanRequest(order Order, target enums.OrderStatus) bool {
	if !s.CanView(order) {
		return false
	}
	if s.Role == enums.ActorRoleCustomer {
		return target == enums.OrderStatusCancelled
	}
	return true
}
