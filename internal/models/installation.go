package models

// CreateOrderRequest represents an incoming installation registration
type CreateOrderRequest struct {
	Products    []Product      `json:"products"`
	Address     *Address       `json:"address"`
	DateInstall *LocalDateTime `json:"date_install"`
}

// Product represents a single product to be installed
type Product struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

// Address represents the installation address.
// Only the first address line is required.
type Address struct {
	CustomerFirstAddress string `json:"customer_first_address"`
	CustomerWard         string `json:"customer_ward,omitempty"`
	CustomerDistrict     string `json:"customer_district,omitempty"`
	CustomerProvince     string `json:"customer_province,omitempty"`
}

// CancelOrderRequest represents an installation cancellation
type CancelOrderRequest struct {
	TrackingCode string `json:"tracking_code"`
	Reason       string `json:"reason,omitempty"`
}

// RegisterResponse is the payload returned for a successful registration
type RegisterResponse struct {
	TrackingCode string `json:"tracking_code"`
}

// TrackingStatusRegistered is the only status the mock ever reports
const TrackingStatusRegistered = "REGISTERED"

// TrackingInfo is the fabricated tracking status of an installation
type TrackingInfo struct {
	TrackingCode         string        `json:"tracking_code"`
	Status               string        `json:"status"`
	CreatedAt            LocalDateTime `json:"created_at"`
	EstimatedInstallDate LocalDateTime `json:"estimated_install_date"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string        `json:"status"`
	Timestamp LocalDateTime `json:"timestamp"`
	Service   string        `json:"service"`
	Version   string        `json:"version"`
}
