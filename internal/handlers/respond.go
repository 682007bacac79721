package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/currency-watchlist/internal/apperrors"
	"github.com/sbilibin2017/currency-watchlist/internal/logger"
	"github.com/sbilibin2017/currency-watchlist/internal/models"
)

const internalErrorMessage = "Internal server error"

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeMessage writes a {"message": ...} response.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.MessageResponse{Message: message})
}

// writeError maps a service error to its status code and message.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidInput):
		writeMessage(w, http.StatusBadRequest, apperrors.Message(err, "Invalid input"))
	case errors.Is(err, apperrors.ErrNotFound):
		writeMessage(w, http.StatusNotFound, apperrors.Message(err, "Currency not found"))
	case errors.Is(err, apperrors.ErrAlreadyExists):
		writeMessage(w, http.StatusConflict, apperrors.Message(err, "Currency already exists"))
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeMessage(w, http.StatusInternalServerError, internalErrorMessage)
	}
}

// isTypeError reports whether a JSON decode failed because a field had the
// wrong type.
func isTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}
