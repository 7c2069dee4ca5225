package orders

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	"github.com/shopspring/decimal"
)

// Line is a frozen cart line: prices are captured at submission and never re-read
// from the catalog.
type Line struct {
	ItemID         string `json:"item_id"`
	Name           string `json:"name"`
	StallID        string `json:"stall_id"`
	Category       string `json:"category"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	TotalCents     int64  `json:"total_cents"`
}

// Order is an immutable snapshot of a submitted cart plus its lifecycle state. The
// tracker hands out copies; mutating one has no effect on the tracked order.
type Order struct {
	ID            uuid.UUID
	Number        string
	SessionID     string
	Channel       enums.OrderChannel
	Status        enums.OrderStatus
	Lines         []Line
	Stalls        []string
	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64
	TaxRate       decimal.Decimal
	PaymentMethod enums.PaymentMethod
	CustomerName  string
	PickupSlot    string
	Note          string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	FulfilledAt   *time.Time
	CancelledAt   *time.Time
}

// HasStall reports whether any line of the order belongs to stallID.
func (o Order) HasStall(stallID string) bool {
	return slices.Contains(o.Stalls, stallID)
}

// ItemCount is the sum of line quantities.
func (o Order) ItemCount() int {
	count := 0
	for _, line := range o.Lines {
		count += line.Quantity
	}
	return count
}

func (o Order) clone() Order {
	o.Lines = slices.Clone(o.Lines)
	o.Stalls = slices.Clone(o.Stalls)
	if o.FulfilledAt != nil {
		t := *o.FulfilledAt
		o.FulfilledAt = &t
	}
	if o.CancelledAt != nil {
		t := *o.CancelledAt
		o.CancelledAt = &t
	}
	return o
}
