package controllers

import (
	"context"
	"net/http"

	"github.com/chocozoo/storefront/api/responses"
	"github.com/chocozoo/storefront/pkg/config"
	pkgerrors "github.com/chocozoo/storefront/pkg/errors"
	"github.com/chocozoo/storefront/pkg/logger"
)

const envHeader = "X-Storefront-Env"

// Pinger is a dependency checked by the readiness probe.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings redis when it is configured; a nil pinger is skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisPinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if redisPinger != nil {
			if err := redisPinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
