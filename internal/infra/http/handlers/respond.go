package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tracerfleet/tracer-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Contact endpoint envelope: {error, message} plus an optional field
// breakdown for validation failures.
func writeContactError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, map[string]string{
		"error":   errCode,
		"message": message,
	})
}

func writeValidationError(w http.ResponseWriter, errs usecase.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "Validation failed",
		"message": "Please correct the errors and try again",
		"errors":  errs,
	})
}

// Payment endpoint envelope: {success, message}.
func writePaymentError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}
