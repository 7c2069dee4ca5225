package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jatansg/sgfoodcourt/pkg/enums"
	"github.com/jatansg/sgfoodcourt/pkg/money"
	"go.uber.org/multierr"
)

type fileCatalog struct {
	Stalls []fileStall `json:"stalls"`
	Items  []fileItem  `json:"items"`
}

type fileStall struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Owner          string `json:"owner"`
	Cuisine        string `json:"cuisine"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	OperatingHours string `json:"operating_hours"`
	Contact        string `json:"contact"`
}

type fileItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Price is a major-unit string such as "12.50" so the file never carries floats.
	Price       string `json:"price"`
	StallID     string `json:"stall_id"`
	Category    string `json:"category"`
	Available   *bool  `json:"available"`
	PrepMinutes int    `json:"prep_minutes"`
}

// LoadFile reads a JSON catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a JSON catalog. Items default to available when the flag is omitted.
func Load(r io.Reader) (*Catalog, error) {
	var raw fileCatalog
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	var errs error
	stalls := make([]Stall, 0, len(raw.Stalls))
	for _, s := range raw.Stalls {
		stalls = append(stalls, Stall{
			ID:             s.ID,
			Name:           s.Name,
			Owner:          s.Owner,
			Cuisine:        s.Cuisine,
			Description:    s.Description,
			Status:         enums.StallStatus(s.Status),
			OperatingHours: s.OperatingHours,
			Contact:        s.Contact,
		})
	}

	items := make([]Item, 0, len(raw.Items))
	for _, it := range raw.Items {
		cents, err := money.ParseCents(it.Price)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("item %q: %w", it.ID, err))
			continue
		}
		available := true
		if it.Available != nil {
			available = *it.Available
		}
		items = append(items, Item{
			ID:             it.ID,
			Name:           it.Name,
			Description:    it.Description,
			UnitPriceCents: cents,
			StallID:        it.StallID,
			Category:       it.Category,
			Available:      available,
			PrepMinutes:    it.PrepMinutes,
		})
	}

	c, err := New(stalls, items)
	if err = multierr.Append(errs, err); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}
