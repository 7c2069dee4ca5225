package middleware

import (
	"net/http"
	"strings"

	"github.com/jatansg/sgfoodcourt/api/responses"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
)

const (
	sessionIDHeader = "X-Session-Id"
	actorRoleHeader = "X-Actor-Role"
	stallIDHeader   = "X-Stall-Id"
)

// Actor reads who is calling from request headers. There is no authentication; the
// headers are trusted as sent. A missing role means customer.
func Actor(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			role := enums.ActorRoleCustomer
			if raw := strings.TrimSpace(r.Header.Get(actorRoleHeader)); raw != "" {
				parsed, err := enums.ParseActorRole(raw)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "unknown actor role"))
					return
				}
				role = parsed
			}
			ctx = WithRole(ctx, role)

			sessionID := strings.TrimSpace(r.Header.Get(sessionIDHeader))
			if sessionID != "" {
				ctx = WithSessionID(ctx, sessionID)
			}
			stallID := strings.TrimSpace(r.Header.Get(stallIDHeader))
			if stallID != "" {
				ctx = WithStallID(ctx, stallID)
			}

			if logg != nil {
				ctx = logg.WithActorRole(ctx, string(role))
				if sessionID != "" {
					ctx = logg.WithSessionID(ctx, sessionID)
				}
				if stallID != "" {
					ctx = logg.WithStallID(ctx, stallID)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession rejects requests without a session header.
func RequireSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SessionIDFromContext(r.Context()) == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "X-Session-Id header required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
