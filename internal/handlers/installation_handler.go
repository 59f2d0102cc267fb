package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mockapi/installation-api/internal/models"
	"github.com/mockapi/installation-api/internal/service"
)

// installationService is the subset of service.InstallationService used here
type installationService interface {
	Register(ctx context.Context, req models.CreateOrderRequest) (*models.RegisterResponse, error)
	Cancel(ctx context.Context, req models.CancelOrderRequest) error
	Track(ctx context.Context, trackingCode string) models.TrackingInfo
}

const cancelledMessage = "Installation cancelled successfully"

// InstallationHandler handles the mock vendor installation endpoints
type InstallationHandler struct {
	service installationService
	log     *slog.Logger
}

// NewInstallationHandler creates a new installation handler
func NewInstallationHandler(svc installationService, log *slog.Logger) *InstallationHandler {
	return &InstallationHandler{
		service: svc,
		log:     log,
	}
}

// Register handles POST /api/vendor/installation/register
func (h *InstallationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest

	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("failed to decode registration request", "error", err)
		WriteEnvelope(w, models.Error[models.RegisterResponse]("Invalid request body", http.StatusBadRequest), h.log)
		return
	}

	h.log.Info("received installation registration request", registrationAttrs(req)...)

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		status, message := registrationFailure(err)
		if status == http.StatusInternalServerError {
			h.log.Error("error processing registration request", "error", err)
		} else {
			h.log.Warn("invalid registration request", "error", err)
		}
		WriteEnvelope(w, models.Error[models.RegisterResponse](message, status), h.log)
		return
	}

	h.log.Info("generated tracking code", "tracking_code", resp.TrackingCode)
	WriteEnvelope(w, models.Success(*resp), h.log)
}

func registrationFailure(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrAddressRequired):
		return http.StatusBadRequest, "Address is required"
	case errors.Is(err, service.ErrFirstAddressRequired):
		return http.StatusBadRequest, "Customer first address is required"
	case errors.Is(err, service.ErrDateInstallRequired):
		return http.StatusBadRequest, "Date install is required"
	default:
		return http.StatusInternalServerError, "Failed to process registration: " + err.Error()
	}
}

func registrationAttrs(req models.CreateOrderRequest) []any {
	attrs := []any{"products", len(req.Products)}
	if req.Address != nil {
		attrs = append(attrs, "address", req.Address.CustomerFirstAddress)
	}
	if req.DateInstall != nil {
		attrs = append(attrs, "date_install", req.DateInstall.String())
	}
	return attrs
}

// Cancel handles POST /api/vendor/installation/cancel
func (h *InstallationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	var req models.CancelOrderRequest

	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Warn("failed to decode cancellation request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	if err := h.service.Cancel(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrTrackingCodeRequired) {
			WriteError(w, http.StatusBadRequest, "Tracking code is required", h.log)
			return
		}

		h.log.Error("error processing cancellation request", "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to process cancellation: "+err.Error(), h.log)
		return
	}

	h.log.Info("installation cancelled", "tracking_code", req.TrackingCode, "reason", req.Reason)
	WriteEnvelope(w, models.SuccessMessage[struct{}](cancelledMessage), h.log)
}

// Track handles GET /api/vendor/installation/tracking/{trackingCode}
// Any code is reported as registered, whether or not it was ever issued.
func (h *InstallationHandler) Track(w http.ResponseWriter, r *http.Request) {
	trackingCode := chi.URLParam(r, "trackingCode")

	info := h.service.Track(r.Context(), trackingCode)
	WriteEnvelope(w, models.Success(info), h.log)
}
