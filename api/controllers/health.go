package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/bintangpramudya/kasirpay-backend/api/responses"
	pkgerrors "github.com/bintangpramudya/kasirpay-backend/pkg/errors"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthController answers liveness and readiness probes.
type HealthController struct {
	db    pinger
	cache pinger
	logg  *logger.Logger
}

func NewHealthController(db, cache pinger, logg *logger.Logger) *HealthController {
	return &HealthController{db: db, cache: cache, logg: logg}
}

// Live reports the process is up.
func (c *HealthController) Live(w http.ResponseWriter, r *http.Request) {
	responses.WriteSuccess(w, map[string]string{"status": "ok"})
}

// Ready verifies the datastores are reachable before reporting healthy.
func (c *HealthController) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if c.db != nil {
		if err := c.db.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), c.logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
			return
		}
	}
	if c.cache != nil {
		if err := c.cache.Ping(ctx); err != nil {
			responses.WriteError(r.Context(), c.logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
			return
		}
	}

	responses.WriteSuccess(w, map[string]string{"status": "ready"})
}
