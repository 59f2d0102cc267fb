package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mockapi/installation-api/internal/models"
)

var (
	ErrAddressRequired      = errors.New("address is required")
	ErrFirstAddressRequired = errors.New("customer first address is required")
	ErrDateInstallRequired  = errors.New("date install is required")
	ErrTrackingCodeRequired = errors.New("tracking code is required")
)

// estimatedInstallDelay is how far ahead the fabricated install date lies
const estimatedInstallDelay = 3 * 24 * time.Hour

// TrackingCodeGenerator produces tracking codes
type TrackingCodeGenerator interface {
	Generate() (string, error)
}

// ServiceInfo describes the running service for health checks
type ServiceInfo struct {
	Name    string
	Version string
}

// InstallationService implements the mock installation vendor.
// Nothing is stored: every call builds its response from the request and
// the current time.
type InstallationService struct {
	generator TrackingCodeGenerator
	info      ServiceInfo
	now       func() time.Time
}

// NewInstallationService creates a new installation service
func NewInstallationService(generator TrackingCodeGenerator, info ServiceInfo) *InstallationService {
	return &InstallationService{
		generator: generator,
		info:      info,
		now:       time.Now,
	}
}

// SetClock overrides the clock used for fabricated timestamps.
func (s *InstallationService) SetClock(now func() time.Time) {
	s.now = now
}

// Register validates an installation order and issues a tracking code
func (s *InstallationService) Register(ctx context.Context, req models.CreateOrderRequest) (*models.RegisterResponse, error) {
	if req.Address == nil {
		return nil, ErrAddressRequired
	}
	if strings.TrimSpace(req.Address.CustomerFirstAddress) == "" {
		return nil, ErrFirstAddressRequired
	}
	if req.DateInstall == nil {
		return nil, ErrDateInstallRequired
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	code, err := s.generator.Generate()
	if err != nil {
		return nil, err
	}

	return &models.RegisterResponse{TrackingCode: code}, nil
}

// Cancel acknowledges a cancellation. No installation is actually cancelled.
func (s *InstallationService) Cancel(ctx context.Context, req models.CancelOrderRequest) error {
	if strings.TrimSpace(req.TrackingCode) == "" {
		return ErrTrackingCodeRequired
	}
	return ctx.Err()
}

// Track fabricates a tracking status for any code, known or not
func (s *InstallationService) Track(ctx context.Context, trackingCode string) models.TrackingInfo {
	now := s.now()
	return models.TrackingInfo{
		TrackingCode:         trackingCode,
		Status:               models.TrackingStatusRegistered,
		CreatedAt:            models.NewLocalDateTime(now),
		EstimatedInstallDate: models.NewLocalDateTime(now.Add(estimatedInstallDelay)),
	}
}

// Health returns the static health payload stamped with the current time
func (s *InstallationService) Health() models.HealthResponse {
	return models.HealthResponse{
		Status:    "UP",
		Timestamp: models.NewLocalDateTime(s.now()),
		Service:   s.info.Name,
		Version:   s.info.Version,
	}
}
