// Package http carries the handlers and middleware shared by the whole
// HTTP surface: health checks, Prometheus metrics, request logging,
// panic recovery, body limits, and timeouts.
package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse is the JSON body of the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus is the result of one dependency check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// BreakerState reports the storage circuit breaker, satisfied by the
// breaker-wrapped DB.
type BreakerState interface {
	IsOpen() bool
}

// HealthHandler serves the liveness/readiness probe. It pings the
// article store and reports the breaker state; an open breaker degrades
// the check but an unreachable database fails it.
type HealthHandler struct {
	DB      *sql.DB
	Breaker BreakerState
	Version string
}

// ServeHTTP runs all checks.
// @Summary      Health check
// @Description  Reports service health including storage connectivity.
// @Tags         health
// @Produce      json
// @Success      200 {object} HealthResponse "healthy"
// @Failure      503 {object} HealthResponse "unhealthy"
// @Router       /healthz [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]CheckStatus{
		"database": h.checkDatabase(ctx),
	}

	status := "healthy"
	code := http.StatusOK
	for _, c := range checks {
		if c.Status != "healthy" {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if h.Breaker != nil && h.Breaker.IsOpen() {
		return CheckStatus{
			Status:  "unhealthy",
			Message: "storage circuit breaker is open",
		}
	}

	if h.DB == nil {
		return CheckStatus{Status: "unhealthy", Message: "database not configured"}
	}
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: "unhealthy", Message: "database unreachable"}
	}
	return CheckStatus{Status: "healthy"}
}
