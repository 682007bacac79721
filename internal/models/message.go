package models

// MessageResponse carries a human-readable message. It is used for
// confirmations, errors and the empty watchlist.
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Currency USD removed
	Message string `json:"message"`
}

// HealthResponse is returned by the health check.
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
}
