package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mockapi/installation-api/internal/models"
)

type healthReporter interface {
	Health() models.HealthResponse
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	reporter healthReporter
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(reporter healthReporter, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		reporter: reporter,
		logger:   logger,
	}
}

// ServeHTTP handles health check requests. The payload is returned bare,
// not wrapped in an envelope.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.reporter.Health(), h.logger)
}
