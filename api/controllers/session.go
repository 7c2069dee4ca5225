package controllers

import (
	"net/http"

	"github.com/jatansg/sgfoodcourt/api/responses"
	"github.com/jatansg/sgfoodcourt/api/validators"
	"github.com/jatansg/sgfoodcourt/internal/session"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
)

type sessionCreateRequest struct {
	Channel string `json:"channel" validate:"omitempty,oneof=customer pos"`
}

// SessionCreate opens a cart session. The body is optional; the channel defaults to
// customer.
func SessionCreate(svc session.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}
		var payload sessionCreateRequest
		if err := validators.DecodeOptionalJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		info, err := svc.Open(r.Context(), enums.OrderChannel(payload.Channel))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, info)
	}
}
