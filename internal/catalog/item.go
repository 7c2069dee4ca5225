package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jatansg/sgfoodcourt/pkg/enums"
	"go.uber.org/multierr"
)

// Stall is a food stall trading inside the coffee shop.
type Stall struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Owner          string            `json:"owner"`
	Cuisine        string            `json:"cuisine"`
	Description    string            `json:"description,omitempty"`
	Status         enums.StallStatus `json:"status"`
	OperatingHours string            `json:"operating_hours,omitempty"`
	Contact        string            `json:"contact,omitempty"`
}

// IsActive reports whether the stall is currently trading.
func (s Stall) IsActive() bool {
	return s.Status == enums.StallStatusActive
}

// NewStall validates the stall record. An empty status defaults to active.
func NewStall(s Stall) (Stall, error) {
	s.ID = strings.TrimSpace(s.ID)
	s.Name = strings.TrimSpace(s.Name)
	if s.Status == "" {
		s.Status = enums.StallStatusActive
	}

	var errs error
	if s.ID == "" {
		errs = multierr.Append(errs, errors.New("stall id is required"))
	}
	if s.Name == "" {
		errs = multierr.Append(errs, fmt.Errorf("stall %q: name is required", s.ID))
	}
	if !s.Status.IsValid() {
		errs = multierr.Append(errs, fmt.Errorf("stall %q: invalid status %q", s.ID, s.Status))
	}
	if errs != nil {
		return Stall{}, errs
	}
	return s, nil
}

// Item is a sellable menu entry. Items are immutable once the catalog is built.
type Item struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	StallID        string `json:"stall_id"`
	Category       string `json:"category"`
	Available      bool   `json:"available"`
	PrepMinutes    int    `json:"prep_minutes,omitempty"`
}

// NewItem validates an item record and reports every problem at once.
func NewItem(it Item) (Item, error) {
	it.ID = strings.TrimSpace(it.ID)
	it.Name = strings.TrimSpace(it.Name)
	it.StallID = strings.TrimSpace(it.StallID)
	it.Category = strings.TrimSpace(it.Category)

	var errs error
	if it.ID == "" {
		errs = multierr.Append(errs, errors.New("item id is required"))
	}
	if it.Name == "" {
		errs = multierr.Append(errs, fmt.Errorf("item %q: name is required", it.ID))
	}
	if it.UnitPriceCents < 0 {
		errs = multierr.Append(errs, fmt.Errorf("item %q: unit price must be non-negative", it.ID))
	}
	if it.StallID == "" {
		errs = multierr.Append(errs, fmt.Errorf("item %q: stall id is required", it.ID))
	}
	if it.Category == "" {
		errs = multierr.Append(errs, fmt.Errorf("item %q: category is required", it.ID))
	}
	if it.PrepMinutes < 0 {
		errs = multierr.Append(errs, fmt.Errorf("item %q: prep minutes must be non-negative", it.ID))
	}
	if errs != nil {
		return Item{}, errs
	}
	return it, nil
}
