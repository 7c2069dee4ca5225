package controllers

import (
	"net/http"

	"github.com/jatansg/sgfoodcourt/api/controllers/dto"
	"github.com/jatansg/sgfoodcourt/api/middleware"
	"github.com/jatansg/sgfoodcourt/api/responses"
	"github.com/jatansg/sgfoodcourt/api/validators"
	checkoutsvc "github.com/jatansg/sgfoodcourt/internal/checkout"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
)

// checkoutRequest leaves payment_method unvalidated so the engine can tell a missing
// method from an unsupported one.
type checkoutRequest struct {
	PaymentMethod string `json:"payment_method"`
	Note          string `json:"note" validate:"max=280"`
	CustomerName  string `json:"customer_name" validate:"max=80"`
	PickupSlot    string `json:"pickup_slot" validate:"max=32"`
	Channel       string `json:"channel" validate:"omitempty,oneof=customer pos"`
}

// Checkout submits the session's cart as an order and empties the cart.
func Checkout(svc checkoutsvc.Service, presenter dto.Presenter, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "X-Session-Id header required"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Execute(r.Context(), sessionID, checkoutsvc.Input{
			PaymentMethod: payload.PaymentMethod,
			Note:          payload.Note,
			CustomerName:  payload.CustomerName,
			PickupSlot:    payload.PickupSlot,
			Channel:       enums.OrderChannel(payload.Channel),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, presenter.Order(order))
	}
}
