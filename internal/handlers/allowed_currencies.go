package handlers

//go:generate mockgen -source=allowed_currencies.go -destination=allowed_currencies_mock.go -package=handlers

import (
	"net/http"

	"github.com/sbilibin2017/currency-watchlist/internal/models"
)

// AllowedCurrencyLister defines the interface that the service must implement.
type AllowedCurrencyLister interface {
	ListAllowedCurrencies() []models.AllowedCurrency
}

// NewListAllowedCurrenciesHandler returns an HTTP handler listing the currencies that may be tracked.
// @Summary List allowed currencies
// @Tags currencies
// @Produce json
// @Success 200 {array} models.AllowedCurrency
// @Router /allowed-currencies [get]
func NewListAllowedCurrenciesHandler(svc AllowedCurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.ListAllowedCurrencies())
	}
}
