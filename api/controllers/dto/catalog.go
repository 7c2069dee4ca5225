package dto

import "github.com/jatansg/sgfoodcourt/internal/catalog"

type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       Amount `json:"price"`
	StallID     string `json:"stall_id"`
	Category    string `json:"category"`
	Available   bool   `json:"available"`
	Orderable   bool   `json:"orderable"`
	PrepMinutes int    `json:"prep_minutes,omitempty"`
}

func (p Presenter) Item(it catalog.Item, orderable bool) Item {
	return Item{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       p.Amount(it.UnitPriceCents),
		StallID:     it.StallID,
		Category:    it.Category,
		Available:   it.Available,
		Orderable:   orderable,
		PrepMinutes: it.PrepMinutes,
	}
}
