package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jatansg/sgfoodcourt/api/controllers/dto"
	"github.com/jatansg/sgfoodcourt/api/responses"
	"github.com/jatansg/sgfoodcourt/api/validators"
	"github.com/jatansg/sgfoodcourt/internal/catalog"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
)

// StallsList returns every stall, trading or not.
func StallsList(cat *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, cat.Stalls())
	}
}

type catalogListResponse struct {
	Items      []dto.Item `json:"items"`
	Categories []string   `json:"categories"`
}

// CatalogList returns menu items filtered by stall_id, category, q and available.
func CatalogList(cat *catalog.Catalog, presenter dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		availableOnly, err := validators.ParseQueryBool(r, "available", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		query := r.URL.Query()
		items := cat.Items(catalog.ItemFilter{
			StallID:       strings.TrimSpace(query.Get("stall_id")),
			Category:      strings.TrimSpace(query.Get("category")),
			Search:        strings.TrimSpace(query.Get("q")),
			AvailableOnly: availableOnly,
		})

		out := catalogListResponse{
			Items:      make([]dto.Item, 0, len(items)),
			Categories: cat.Categories(),
		}
		for _, it := range items {
			out.Items = append(out.Items, presenter.Item(it, cat.Orderable(it)))
		}
		responses.WriteSuccess(w, out)
	}
}

// CatalogItem returns one menu item.
func CatalogItem(cat *catalog.Catalog, presenter dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cat == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		itemID := chi.URLParam(r, "itemId")
		item, ok := cat.Item(itemID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "catalog item not found").
				WithDetails(map[string]any{"item_id": itemID}))
			return
		}
		responses.WriteSuccess(w, presenter.Item(item, cat.Orderable(item)))
	}
}
