package handlers

//go:generate mockgen -source=set_rate.go -destination=set_rate_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/currency-watchlist/internal/models"
)

// RateSetter defines the interface that the service must implement.
type RateSetter interface {
	SetRate(ctx context.Context, code string, rate *float64) (*models.Currency, error)
}

// NewSetRateHandler returns an HTTP handler updating the rate of a currency.
// The update time is set by the server.
// @Summary Update a currency rate
// @Tags currencies
// @Accept json
// @Produce json
// @Param code path string true "Currency code" example(USD)
// @Param setRateRequest body models.SetRateRequest true "New rate"
// @Success 200 {object} models.Currency "Currency updated"
// @Failure 400 {object} models.MessageResponse "Invalid code or rate"
// @Failure 404 {object} models.MessageResponse "Currency not found"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /currencies/{code} [put]
func NewSetRateHandler(svc RateSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SetRateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if isTypeError(err) {
				writeMessage(w, http.StatusBadRequest, "Rate must be a positive number")
				return
			}
			writeMessage(w, http.StatusBadRequest, "Field 'rate' is required and cannot be null")
			return
		}

		currency, err := svc.SetRate(r.Context(), chi.URLParam(r, "code"), req.Rate)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, currency)
	}
}
