package domain

import (
	"errors"
	"testing"
)

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrUnknownTemplate", ErrUnknownTemplate, "unknown template"},
		{"ErrInvalidState", ErrInvalidState, "invalid generation state"},
		{"ErrInvalidInput", ErrInvalidInput, "invalid input"},
		{"ErrExtractionTimeout", ErrExtractionTimeout, "extraction timed out"},
		{"ErrExtractionFailed", ErrExtractionFailed, "extraction failed"},
		{"ErrAssemblyFailed", ErrAssemblyFailed, "assembly failed"},
		{"ErrUnauthorized", ErrUnauthorized, "unauthorized"},
		{"ErrTokenExpired", ErrTokenExpired, "token expired"},
		{"ErrTokenInvalid", ErrTokenInvalid, "token invalid"},
		{"ErrServiceUnavailable", ErrServiceUnavailable, "service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.msg {
				t.Errorf("expected %q, got %q", tt.msg, tt.err.Error())
			}
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	allErrors := []error{
		ErrUnknownTemplate,
		ErrInvalidState,
		ErrInvalidInput,
		ErrExtractionTimeout,
		ErrExtractionFailed,
		ErrAssemblyFailed,
		ErrUnauthorized,
		ErrTokenExpired,
		ErrTokenInvalid,
		ErrServiceUnavailable,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestErrorsIs(t *testing.T) {
	// Test that errors.Is works correctly
	if !errors.Is(ErrUnknownTemplate, ErrUnknownTemplate) {
		t.Error("ErrUnknownTemplate should match itself")
	}

	if errors.Is(ErrUnknownTemplate, ErrInvalidState) {
		t.Error("ErrUnknownTemplate should not match ErrInvalidState")
	}
}
