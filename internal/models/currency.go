package models

import "time"

// Currency is a tracked currency stored in the watchlist.
// swagger:model Currency
type Currency struct {
	// Three-letter currency code
	// example: USD
	Code string `json:"code" db:"code"`

	// Display name taken from the allow-list
	// example: Dólar Americano
	Name string `json:"name" db:"name"`

	// Exchange rate, null until first update
	// example: 5.5
	Rate *float64 `json:"rate"`

	// Time of the last rate update (UTC), null until first update
	// example: 2025-01-02T15:04:05.999999Z
	UpdatedAt *time.Time `json:"updated_at"`
}

// AddCurrencyRequest represents the JSON body for adding a currency
// swagger:model AddCurrencyRequest
type AddCurrencyRequest struct {
	// Currency code from the allow-list
	// required: true
	// example: USD
	Code *string `json:"code"`
}

// SetRateRequest represents the JSON body for updating a currency rate
// swagger:model SetRateRequest
type SetRateRequest struct {
	// New exchange rate, must be positive
	// required: true
	// example: 5.5
	Rate *float64 `json:"rate"`
}
