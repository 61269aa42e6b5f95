package http

import (
	"net/http"
	"time"

	"github.com/Best-Company-A-S/masterticket/internal/helpdesk/store"
	"github.com/Best-Company-A-S/masterticket/pkg/helpdesksdk"
	"github.com/Best-Company-A-S/masterticket/pkg/httpx"
	"github.com/Best-Company-A-S/masterticket/pkg/slogx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Probe
//	@Description	Reports 503 while the database is unreachable.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	helpdesksdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	helpdesksdk.HealthResponse	"database unavailable"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &helpdesksdk.HealthChecks{Database: "ok"}
		status := "ok"
		code := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness check failed", slogx.Err(err))
			checks.Database = "unavailable"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, code, helpdesksdk.HealthResponse{
			Status:  status,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}
