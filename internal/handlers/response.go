package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mockapi/installation-api/internal/models"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteEnvelope writes resp using its own status as the HTTP status code
func WriteEnvelope[T any](w http.ResponseWriter, resp models.HTTPResponse[T], logger *slog.Logger) {
	WriteJSON(w, resp.Status, resp, logger)
}

// WriteError writes a failure envelope with the given status
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteEnvelope(w, models.Error[struct{}](message, status), logger)
}
