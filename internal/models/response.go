package models

import "net/http"

// HTTPResponse is the uniform envelope returned by the installation API.
// Data is only ever set on success.
type HTTPResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    *T     `json:"data,omitempty"`
	Status  int    `json:"status"`
}

// Success wraps data in a 200 envelope.
func Success[T any](data T) HTTPResponse[T] {
	return HTTPResponse[T]{
		Success: true,
		Data:    &data,
		Status:  http.StatusOK,
	}
}

// SuccessMessage returns a 200 envelope carrying only a message.
func SuccessMessage[T any](message string) HTTPResponse[T] {
	return HTTPResponse[T]{
		Success: true,
		Message: message,
		Status:  http.StatusOK,
	}
}

// Error returns a failure envelope with no data.
func Error[T any](message string, status int) HTTPResponse[T] {
	return HTTPResponse[T]{
		Success: false,
		Message: message,
		Status:  status,
	}
}
