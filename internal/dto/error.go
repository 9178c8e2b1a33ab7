package dto

import "time"

// ErrorResponse is the structured error body returned by every endpoint.
// CorrelationID echoes the X-Correlation-ID request header (generated when
// absent) so callers can trace a failure across the composite call chain.
type ErrorResponse struct {
	Timestamp     time.Time `json:"timestamp"`
	Status        int       `json:"status"`
	Error         string    `json:"error"`
	Message       string    `json:"message"`
	Path          string    `json:"path"`
	CorrelationID string    `json:"correlationId"`
}
