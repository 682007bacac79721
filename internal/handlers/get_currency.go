package handlers

//go:generate mockgen -source=get_currency.go -destination=get_currency_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/currency-watchlist/internal/models"
)

// CurrencyGetter defines the interface that the service must implement.
type CurrencyGetter interface {
	GetCurrency(ctx context.Context, code string) (*models.Currency, error)
}

// NewGetCurrencyHandler returns an HTTP handler fetching one tracked currency.
// @Summary Get a tracked currency
// @Tags currencies
// @Produce json
// @Param code path string true "Currency code" example(USD)
// @Success 200 {object} models.Currency
// @Failure 400 {object} models.MessageResponse "Invalid code"
// @Failure 404 {object} models.MessageResponse "Currency not found"
// @Router /currencies/{code} [get]
func NewGetCurrencyHandler(svc CurrencyGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currency, err := svc.GetCurrency(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, currency)
	}
}
