package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jatansg/sgfoodcourt/api/controllers/dto"
	"github.com/jatansg/sgfoodcourt/api/middleware"
	"github.com/jatansg/sgfoodcourt/api/responses"
	"github.com/jatansg/sgfoodcourt/api/validators"
	cartsvc "github.com/jatansg/sgfoodcourt/internal/cart"
	"github.com/jatansg/sgfoodcourt/internal/session"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
)

// Fetch returns the session's cart.
func Fetch(svc session.Service, presenter dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return handle(svc, presenter, logg, func(r *http.Request, sessionID string) (cartsvc.Snapshot, error) {
		return svc.Cart(r.Context(), sessionID)
	})
}

// AddItem adds one unit of the requested catalog item.
func AddItem(svc session.Service, presenter dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return handle(svc, presenter, logg, func(r *http.Request, sessionID string) (cartsvc.Snapshot, error) {
		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return cartsvc.Snapshot{}, err
		}
		return svc.AddItem(r.Context(), sessionID, payload.ItemID)
	})
}

// SetQuantity overwrites a line's quantity; 0 removes it.
func SetQuantity(svc session.Service, presenter dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return handle(svc, presenter, logg, func(r *http.Request, sessionID string) (cartsvc.Snapshot, error) {
		var payload setQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			return cartsvc.Snapshot{}, err
		}
		return svc.SetQuantity(r.Context(), sessionID, chi.URLParam(r, "itemId"), *payload.Quantity)
	})
}

// RemoveItem deletes a line. Removing an absent line succeeds.
func RemoveItem(svc session.Service, presenter dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return handle(svc, presenter, logg, func(r *http.Request, sessionID string) (cartsvc.Snapshot, error) {
		return svc.RemoveItem(r.Context(), sessionID, chi.URLParam(r, "itemId"))
	})
}

// Clear empties the cart.
func Clear(svc session.Service, presenter dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return handle(svc, presenter, logg, func(r *http.Request, sessionID string) (cartsvc.Snapshot, error) {
		return svc.Clear(r.Context(), sessionID)
	})
}

type cartAction func(r *http.Request, sessionID string) (cartsvc.Snapshot, error)

func handle(svc session.Service, presenter dto.Presenter, logg *logger.Logger, action cartAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "X-Session-Id header required"))
			return
		}

		snap, err := action(r, sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, presenter.Cart(sessionID, snap))
	}
}
