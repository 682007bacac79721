package handlers

//go:generate mockgen -source=list_currencies.go -destination=list_currencies_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/currency-watchlist/internal/models"
)

// EmptyWatchlistMessage is returned instead of an empty array.
const EmptyWatchlistMessage = "No currencies in the watchlist"

// CurrencyLister defines the interface that the service must implement.
type CurrencyLister interface {
	ListCurrencies(ctx context.Context) ([]models.Currency, error)
}

// NewListCurrenciesHandler returns an HTTP handler listing tracked currencies.
// An empty watchlist answers with a message object instead of an array;
// existing clients rely on that shape.
// @Summary List tracked currencies
// @Description Returns all currencies in the watchlist, or a message if it is empty
// @Tags currencies
// @Produce json
// @Success 200 {array} models.Currency "Tracked currencies"
// @Success 200 {object} models.MessageResponse "Empty watchlist"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /currencies [get]
func NewListCurrenciesHandler(svc CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		currencies, err := svc.ListCurrencies(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		if len(currencies) == 0 {
			writeMessage(w, http.StatusOK, EmptyWatchlistMessage)
			return
		}
		writeJSON(w, http.StatusOK, currencies)
	}
}
