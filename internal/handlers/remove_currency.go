package handlers

//go:generate mockgen -source=remove_currency.go -destination=remove_currency_mock.go -package=handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CurrencyRemover defines the interface that the service must implement.
type CurrencyRemover interface {
	RemoveCurrency(ctx context.Context, code string) error
}

// NewRemoveCurrencyHandler returns an HTTP handler removing a currency from the watchlist.
// @Summary Remove a currency
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code" example(USD)
// @Success 200 {object} models.MessageResponse "Currency removed"
// @Failure 400 {object} models.MessageResponse "Invalid code"
// @Failure 404 {object} models.MessageResponse "Currency not found"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /currencies/{code} [delete]
func NewRemoveCurrencyHandler(svc CurrencyRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := chi.URLParam(r, "code")

		if err := svc.RemoveCurrency(r.Context(), code); err != nil {
			writeError(w, err)
			return
		}

		writeMessage(w, http.StatusOK, fmt.Sprintf("Currency %s removed", code))
	}
}
