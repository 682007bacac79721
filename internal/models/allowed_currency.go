package models

// AllowedCurrency is an entry of the allow-list of trackable currencies.
// swagger:model AllowedCurrency
type AllowedCurrency struct {
	// example: USD
	Code string `json:"code" yaml:"code"`

	// example: Dólar Americano
	Name string `json:"name" yaml:"name"`
}
