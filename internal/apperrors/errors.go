package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource or reference code could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrBusiness indicates a well-formed request that the current state disallows,
// e.g. insufficient funds or an inactive account. Distinct from ErrValidation so
// callers can tell "fix your request" from "the account cannot do this right now".
var ErrBusiness = errors.New("business rule rejection")

// ErrInternal indicates an infrastructure fault (storage, network).
var ErrInternal = errors.New("internal error")

// AppError wraps an underlying error with a status code and a safe message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInternal
}

// NewAppError creates an AppError for infrastructure failures.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
