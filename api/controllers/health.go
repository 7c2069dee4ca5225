package controllers

import (
	"net/http"

	"github.com/jatansg/sgfoodcourt/api/responses"
	"github.com/jatansg/sgfoodcourt/pkg/config"
	pkgerrors "github.com/jatansg/sgfoodcourt/pkg/errors"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
)

const envHeader = "X-SGFoodCourt-Env"

// ReadinessCheck reports whether a dependency is ready to serve.
type ReadinessCheck func() error

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, checks map[string]ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		failed := map[string]string{}
		for name, check := range checks {
			if err := check(); err != nil {
				failed[name] = err.Error()
			}
		}
		if len(failed) > 0 {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "not ready").WithDetails(failed))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
