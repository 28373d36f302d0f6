package model

import (
	"fmt"
	"strings"

	"github.com/me/seeksim/pkg/sched"
)

// ErrorCode represents a structured API error code.
type ErrorCode string

const (
	ErrValidation       ErrorCode = "VALIDATION_ERROR"
	ErrUnknownAlgorithm ErrorCode = "UNKNOWN_ALGORITHM"
	ErrNotFound         ErrorCode = "NOT_FOUND"
	ErrInternal         ErrorCode = "INTERNAL_ERROR"
)

// APIError is a structured error returned by the seeksim API.
type APIError struct {
	Code    ErrorCode    `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// FieldError describes a validation error on a specific request field.
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// NewValidationError creates an APIError with validation details.
func NewValidationError(msg string, details ...FieldError) *APIError {
	return &APIError{Code: ErrValidation, Message: msg, Details: details}
}

// NewUnknownAlgorithmError creates the UNKNOWN_ALGORITHM APIError for a name
// the engine does not recognize.
func NewUnknownAlgorithmError(name string) *APIError {
	supported := make([]string, 0, len(sched.Algorithms()))
	for _, a := range sched.Algorithms() {
		supported = append(supported, a.String())
	}
	return &APIError{
		Code:    ErrUnknownAlgorithm,
		Message: fmt.Sprintf("unknown scheduling algorithm %q", name),
		Details: []FieldError{{
			Field:   "algorithm",
			Message: "must be one of " + strings.Join(supported, ", "),
		}},
	}
}

// NewNotFoundError creates a NOT_FOUND APIError.
func NewNotFoundError(resource, id string) *APIError {
	return &APIError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s '%s' not found", resource, id),
	}
}
