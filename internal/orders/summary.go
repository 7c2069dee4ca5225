package orders

import (
	"iter"

	"github.com/jatansg/sgfoodcourt/pkg/enums"
)

// Summary backs the dashboard tiles.
type Summary struct {
	Counts                map[enums.OrderStatus]int `json:"counts"`
	Total                 int                       `json:"total"`
	CompletedRevenueCents int64                     `json:"completed_revenue_cents"`
	OpenValueCents        int64                     `json:"open_value_cents"`
}

// Summarize tallies orders per status. Revenue counts completed orders only; open value
// counts orders still in the kitchen (pending, preparing, ready).
func Summarize(seq iter.Seq[Order]) Summary {
	summary := Summary{Counts: make(map[enums.OrderStatus]int)}
	for _, status := range enums.OrderStatuses() {
		summary.Counts[status] = 0
	}
	for order := range seq {
		summary.Counts[order.Status]++
		summary.Total++
		switch order.Status {
		case enums.OrderStatusCompleted:
			summary.CompletedRevenueCents += order.TotalCents
		case enums.OrderStatusPending, enums.OrderStatusPreparing, enums.OrderStatusReady:
			summary.OpenValueCents += order.TotalCents
		}
	}
	return summary
}

// Summary tallies the orders matching filter. The status criterion is ignored so every
// status gets a count.
func (t *Tracker) Summary(filter Filter) Summary {
	filter.Status = ""
	return Summarize(t.List(filter))
}
