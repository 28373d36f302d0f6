package model

import (
	"strings"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: ErrNotFound, Message: "route '/api/v1/nope' not found"}
	want := "NOT_FOUND: route '/api/v1/nope' not found"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid simulation input",
		FieldError{Field: "head", Message: "head position 500 must be between 0 and 199"},
		FieldError{Field: "requests", Message: "request list cannot be empty"},
	)
	if err.Code != ErrValidation {
		t.Errorf("Code = %q, want %q", err.Code, ErrValidation)
	}
	if len(err.Details) != 2 {
		t.Errorf("Details length = %d, want 2", len(err.Details))
	}
}

func TestNewUnknownAlgorithmError(t *testing.T) {
	err := NewUnknownAlgorithmError("LOOK")
	if err.Code != ErrUnknownAlgorithm {
		t.Errorf("Code = %q, want %q", err.Code, ErrUnknownAlgorithm)
	}
	if !strings.Contains(err.Message, `"LOOK"`) {
		t.Errorf("Message = %q, want the offending name quoted", err.Message)
	}
	if len(err.Details) != 1 || err.Details[0].Field != "algorithm" {
		t.Fatalf("Details = %v, want one detail on the algorithm field", err.Details)
	}
	for _, name := range []string{"FCFS", "SSTF", "SCAN", "C-SCAN"} {
		if !strings.Contains(err.Details[0].Message, name) {
			t.Errorf("detail %q should list %s", err.Details[0].Message, name)
		}
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("route", "/api/v1/nope")
	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Message != "route '/api/v1/nope' not found" {
		t.Errorf("Message = %q", err.Message)
	}
}
