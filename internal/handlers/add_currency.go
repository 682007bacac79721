package handlers

//go:generate mockgen -source=add_currency.go -destination=add_currency_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/currency-watchlist/internal/models"
)

// CurrencyAdder defines the interface that the service must implement.
type CurrencyAdder interface {
	AddCurrency(ctx context.Context, code string) (*models.Currency, error)
}

// NewAddCurrencyHandler returns an HTTP handler adding a currency to the watchlist.
// @Summary Add a currency
// @Description Starts tracking a currency from the allow-list. Rate and timestamp start empty.
// @Tags currencies
// @Accept json
// @Produce json
// @Param addCurrencyRequest body models.AddCurrencyRequest true "Currency code"
// @Success 201 {object} models.Currency "Currency added"
// @Failure 400 {object} models.MessageResponse "Missing or invalid code"
// @Failure 409 {object} models.MessageResponse "Currency already exists"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /currencies [post]
func NewAddCurrencyHandler(svc CurrencyAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AddCurrencyRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if isTypeError(err) {
				writeMessage(w, http.StatusBadRequest, "Code must be a 3-character string")
				return
			}
			writeMessage(w, http.StatusBadRequest, "Field 'code' is required")
			return
		}
		if req.Code == nil {
			writeMessage(w, http.StatusBadRequest, "Field 'code' is required")
			return
		}

		currency, err := svc.AddCurrency(r.Context(), *req.Code)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, currency)
	}
}
