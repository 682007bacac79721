package handlers

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/currency-watchlist/internal/logger"
	"github.com/sbilibin2017/currency-watchlist/internal/models"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// NewHealthHandler returns an HTTP handler reporting service health.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /healthz [get]
func NewHealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Log.Errorw("health check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
	}
}
