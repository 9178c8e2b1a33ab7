package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/finserv-tools/bank_management_app/internal/apperrors"
	"github.com/finserv-tools/bank_management_app/internal/dto"
	"github.com/finserv-tools/bank_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// mapError translates a service error into an HTTP status and reason phrase.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, "Bad Request"
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "Not Found"
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, "Conflict"
	case errors.Is(err, apperrors.ErrBusiness):
		return http.StatusUnprocessableEntity, "Unprocessable Entity"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

// respondError writes the structured error body. Internal errors get a
// generic message so implementation details never leak to callers.
func respondError(c *gin.Context, err error) {
	status, reason := mapError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "An unexpected error occurred"
	}

	c.JSON(status, dto.ErrorResponse{
		Timestamp:     time.Now().UTC(),
		Status:        status,
		Error:         reason,
		Message:       message,
		Path:          c.Request.URL.Path,
		CorrelationID: middleware.GetCorrelationID(c.Request.Context()),
	})
}

// respondBindError writes a 400 for request binding and validation failures.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Timestamp:     time.Now().UTC(),
		Status:        http.StatusBadRequest,
		Error:         "Bad Request",
		Message:       "Invalid request format: " + err.Error(),
		Path:          c.Request.URL.Path,
		CorrelationID: middleware.GetCorrelationID(c.Request.Context()),
	})
}
