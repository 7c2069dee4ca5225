package dto

import "github.com/jatansg/sgfoodcourt/internal/cart"

type CartLine struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	StallID   string `json:"stall_id"`
	Category  string `json:"category"`
	UnitPrice Amount `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal Amount `json:"line_total"`
}

type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	ItemCount int        `json:"item_count"`
	TaxRate   string     `json:"tax_rate"`
	Subtotal  Amount     `json:"subtotal"`
	Tax       Amount     `json:"tax"`
	Total     Amount     `json:"total"`
}

func (p Presenter) Cart(sessionID string, snap cart.Snapshot) Cart {
	lines := make([]CartLine, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		lines = append(lines, CartLine{
			ItemID:    l.Item.ID,
			Name:      l.Item.Name,
			StallID:   l.Item.StallID,
			Category:  l.Item.Category,
			UnitPrice: p.Amount(l.Item.UnitPriceCents),
			Quantity:  l.Quantity,
			LineTotal: p.Amount(l.TotalCents()),
		})
	}
	return Cart{
		SessionID: sessionID,
		Lines:     lines,
		ItemCount: snap.ItemCount,
		TaxRate:   snap.TaxRate.String(),
		Subtotal:  p.Amount(snap.Totals.SubtotalCents),
		Tax:       p.Amount(snap.Totals.TaxCents),
		Total:     p.Amount(snap.Totals.TotalCents),
	}
}
