// Package apperrors tests verify the custom error types (ErrNotFound,
// ProviderError, ValidationError), their Error() messages, Is() matching
// semantics, constructor helpers, and compatibility with errors.Is() and
// errors.As() including through fmt.Errorf wrapping.
package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// ---------------------------------------------------------------------------
// ErrNotFound
// ---------------------------------------------------------------------------

func TestErrNotFound_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *ErrNotFound
		expected string
	}{
		{
			name:     "with string ID",
			err:      &ErrNotFound{Resource: "title", ID: "abc"},
			expected: "title with ID abc not found",
		},
		{
			name:     "with int ID",
			err:      &ErrNotFound{Resource: "title", ID: 27205},
			expected: "title with ID 27205 not found",
		},
		{
			name:     "with nil ID",
			err:      &ErrNotFound{Resource: "title", ID: nil},
			expected: "title not found",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrNotFound_Is(t *testing.T) {
	t.Parallel()
	err := NewTitleNotFoundError(1)

	t.Run("matches another ErrNotFound", func(t *testing.T) {
		if !errors.Is(err, &ErrNotFound{Resource: "other", ID: 99}) {
			t.Error("expected errors.Is to match *ErrNotFound regardless of field values")
		}
	})

	t.Run("does not match ProviderError", func(t *testing.T) {
		if errors.Is(err, &ProviderError{}) {
			t.Error("expected errors.Is not to match *ProviderError")
		}
	})

	t.Run("matches through fmt.Errorf wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", err)
		if !errors.Is(wrapped, &ErrNotFound{}) {
			t.Error("expected errors.Is to match *ErrNotFound through wrapping")
		}
	})
}

func TestNewTitleNotFoundError(t *testing.T) {
	t.Parallel()
	err := NewTitleNotFoundError(1396)
	if err.Resource != "title" {
		t.Errorf("Resource = %q, want %q", err.Resource, "title")
	}
	if err.Error() != "title with ID 1396 not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

// ---------------------------------------------------------------------------
// ProviderError
// ---------------------------------------------------------------------------

func TestProviderError_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      *ProviderError
		expected string
	}{
		{
			name:     "status code",
			err:      NewProviderStatusError("search", 401),
			expected: "provider search returned status 401",
		},
		{
			name:     "wrapped error",
			err:      NewProviderRequestError("watch providers", errors.New("connection refused")),
			expected: "provider watch providers failed: connection refused",
		},
		{
			name:     "no detail",
			err:      &ProviderError{Operation: "search"},
			expected: "provider search failed",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestProviderError_UnwrapAndAs(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("search titles: %w", NewProviderRequestError("search", context.DeadlineExceeded))

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected errors.Is to reach the wrapped deadline error")
	}
	if !errors.Is(err, &ProviderError{}) {
		t.Error("expected errors.Is to match *ProviderError")
	}

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatal("expected errors.As to extract *ProviderError")
	}
	if perr.Operation != "search" {
		t.Errorf("Operation = %q, want %q", perr.Operation, "search")
	}
}

func TestProviderError_NotConfigured(t *testing.T) {
	t.Parallel()
	err := NewProviderRequestError("search", ErrNotConfigured)
	if !errors.Is(err, ErrNotConfigured) {
		t.Error("expected errors.Is to match ErrNotConfigured")
	}
}

// ---------------------------------------------------------------------------
// ValidationError
// ---------------------------------------------------------------------------

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := NewValidationError("query", "Query is required")

	if err.Error() != "Query is required" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Field != "query" {
		t.Errorf("Field = %q", err.Field)
	}
	if !errors.Is(fmt.Errorf("wrap: %w", err), &ValidationError{}) {
		t.Error("expected errors.Is to match *ValidationError through wrapping")
	}
	if errors.Is(err, &ProviderError{}) {
		t.Error("expected ValidationError not to match *ProviderError")
	}
}

func TestErrorTypes_ImplementErrorInterface(t *testing.T) {
	t.Parallel()
	var _ error = &ErrNotFound{}
	var _ error = &ProviderError{}
	var _ error = &ValidationError{}
}
