package orders

import (
	"iter"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jatansg/sgfoodcourt/api/controllers/dto"
	"github.com/jatansg/sgfoodcourt/api/middleware"
	"github.com/jatansg/sgfoodcourt/api/responses"
	"github.com/jatansg/sgfoodcourt/api/validators"
	internalorders "github.com/jatansg/sgfoodcourt/internal/orders"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
	"github.com/jatansg/sgfoodcourt/pkg/pagination"
)

// Board is the read and transition surface of the order tracker.
type Board interface {
	Get(orderID uuid.UUID) (internalorders.Order, error)
	List(filter internalorders.Filter) iter.Seq[internalorders.Order]
	Summary(filter internalorders.Filter) internalorders.Summary
	Transition(orderID uuid.UUID, target enums.OrderStatus) (internalorders.Order, error)
}

// List returns a page of orders visible to the caller, newest first.
func List(board Board, presenter dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if board == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order board unavailable"))
			return
		}

		scope, err := scopeFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := validators.ParseQueryEnum(r, "status", enums.ParseOrderStatus)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := r.URL.Query()
		filter := scope.Restrict(internalorders.Filter{
			Status:  status,
			StallID: strings.TrimSpace(query.Get("stall_id")),
			Search:  strings.TrimSpace(query.Get("q")),
		})

		page, err := pagination.Collect(board.List(filter), pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(query.Get("cursor")),
		}, cursorOf)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor"))
			return
		}

		out := dto.OrderPage{Items: make([]dto.Order, 0, len(page.Items)), NextCursor: page.NextCursor}
		for _, order := range page.Items {
			out.Items = append(out.Items, presenter.Order(order))
		}
		responses.WriteSuccess(w, out)
	}
}

// Summary returns per-status counts and revenue for the caller's scope.
func Summary(board Board, presenter dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if board == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order board unavailable"))
			return
		}

		scope, err := scopeFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter := scope.Restrict(internalorders.Filter{
			StallID: strings.TrimSpace(r.URL.Query().Get("stall_id")),
		})
		responses.WriteSuccess(w, presenter.Summary(board.Summary(filter)))
	}
}

// Get returns one order. Orders outside the caller's scope read as not found.
func Get(board Board, presenter dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if board == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order board unavailable"))
			return
		}

		_, order, err := loadVisibleOrder(board, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, presenter.Order(order))
	}
}

type transitionRequest struct {
	Status string `json:"status" validate:"required,oneof=pending preparing ready completed cancelled"`
}

// Transition moves an order along its lifecycle.
func Transition(board Board, presenter dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if board == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order board unavailable"))
			return
		}

		scope, order, err := loadVisibleOrder(board, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload transitionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		target, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		if !scope.CanRequest(order, target) {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "not allowed to change this order"))
			return
		}

		updated, err := board.Transition(order.ID, target)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithOrderID(r.Context(), updated.ID.String())
			ctx = logg.WithFields(ctx, map[string]any{
				"from": string(order.Status),
				"to":   string(updated.Status),
			})
			logg.Info(ctx, "order.transitioned")
		}
		responses.WriteSuccess(w, presenter.Order(updated))
	}
}

func scopeFromRequest(r *http.Request) (internalorders.Scope, error) {
	scope := internalorders.Scope{
		Role:      middleware.RoleFromContext(r.Context()),
		StallID:   middleware.StallIDFromContext(r.Context()),
		SessionID: middleware.SessionIDFromContext(r.Context()),
	}
	if err := scope.Validate(); err != nil {
		return internalorders.Scope{}, err
	}
	return scope, nil
}

func loadVisibleOrder(board Board, r *http.Request) (internalorders.Scope, internalorders.Order, error) {
	scope, err := scopeFromRequest(r)
	if err != nil {
		return internalorders.Scope{}, internalorders.Order{}, err
	}

	raw := chi.URLParam(r, "orderId")
	orderID, err := uuid.Parse(raw)
	if err != nil {
		return internalorders.Scope{}, internalorders.Order{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id").
			WithDetails(map[string]any{"order_id": raw})
	}

	order, err := board.Get(orderID)
	if err != nil {
		return internalorders.Scope{}, internalorders.Order{}, err
	}
	if !scope.CanView(order) {
		return internalorders.Scope{}, internalorders.Order{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, internalorders.ErrOrderNotFound, "order not found").
			WithDetails(map[string]any{"order_id": orderID.String()})
	}
	return scope, order, nil
}

func cursorOf(order internalorders.Order) pagination.Cursor {
	return pagination.Cursor{CreatedAt: order.CreatedAt, ID: order.ID}
}
