package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jatansg/sgfoodcourt/internal/orders"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
)

type OrderLine struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	StallID   string `json:"stall_id"`
	Category  string `json:"category"`
	UnitPrice Amount `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal Amount `json:"line_total"`
}

type Order struct {
	ID            uuid.UUID           `json:"id"`
	Number        string              `json:"number"`
	SessionID     string              `json:"session_id,omitempty"`
	Channel       enums.OrderChannel  `json:"channel"`
	Status        enums.OrderStatus   `json:"status"`
	NextStatuses  []enums.OrderStatus `json:"next_statuses"`
	Lines         []OrderLine         `json:"lines"`
	Stalls        []string            `json:"stalls"`
	ItemCount     int                 `json:"item_count"`
	TaxRate       string              `json:"tax_rate"`
	Subtotal      Amount              `json:"subtotal"`
	Tax           Amount              `json:"tax"`
	Total         Amount              `json:"total"`
	PaymentMethod enums.PaymentMethod `json:"payment_method"`
	CustomerName  string              `json:"customer_name,omitempty"`
	PickupSlot    string              `json:"pickup_slot,omitempty"`
	Note          string              `json:"note,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	FulfilledAt   *time.Time          `json:"fulfilled_at,omitempty"`
	CancelledAt   *time.Time          `json:"cancelled_at,omitempty"`
}

func (p Presenter) Order(o orders.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLine{
			ItemID:    l.ItemID,
			Name:      l.Name,
			StallID:   l.StallID,
			Category:  l.Category,
			UnitPrice: p.Amount(l.UnitPriceCents),
			Quantity:  l.Quantity,
			LineTotal: p.Amount(l.TotalCents),
		})
	}
	return Order{
		ID:            o.ID,
		Number:        o.Number,
		SessionID:     o.SessionID,
		Channel:       o.Channel,
		Status:        o.Status,
		NextStatuses:  orders.NextStatuses(o.Status),
		Lines:         lines,
		Stalls:        o.Stalls,
		ItemCount:     o.ItemCount(),
		TaxRate:       o.TaxRate.String(),
		Subtotal:      p.Amount(o.SubtotalCents),
		Tax:           p.Amount(o.TaxCents),
		Total:         p.Amount(o.TotalCents),
		PaymentMethod: o.PaymentMethod,
		CustomerName:  o.CustomerName,
		PickupSlot:    o.PickupSlot,
		Note:          o.Note,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		FulfilledAt:   o.FulfilledAt,
		CancelledAt:   o.CancelledAt,
	}
}

type OrderPage struct {
	Items      []Order `json:"items"`
	NextCursor string  `json:"next_cursor,omitempty"`
}

type Summary struct {
	Counts           map[enums.OrderStatus]int `json:"counts"`
	Total            int                       `json:"total"`
	CompletedRevenue Amount                    `json:"completed_revenue"`
	OpenValue        Amount                    `json:"open_value"`
}

func (p Presenter) Summary(s orders.Summary) Summary {
	return Summary{
		Counts:           s.Counts,
		Total:            s.Total,
		CompletedRevenue: p.Amount(s.CompletedRevenueCents),
		OpenValue:        p.Amount(s.OpenValueCents),
	}
}
