package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound represents an error when a requested resource is not found.
type ErrNotFound struct {
	Resource string
	ID       interface{}
}

// Error implements the error interface.
func (e *ErrNotFound) Error() string {
	if e.ID != nil {
		return fmt.Sprintf("%s with ID %v not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is allows for error checking with errors.Is().
func (e *ErrNotFound) Is(target error) bool {
	_, ok := target.(*ErrNotFound)
	return ok
}

// NewNotFoundError creates a new ErrNotFound.
func NewNotFoundError(resource string, id interface{}) *ErrNotFound {
	return &ErrNotFound{
		Resource: resource,
		ID:       id,
	}
}

// NewTitleNotFoundError creates a specific error for a title missing from the sample dataset.
func NewTitleNotFoundError(titleID int) *ErrNotFound {
	return NewNotFoundError("title", titleID)
}

// ProviderError is returned when the metadata provider could not deliver a
// usable response: a non-200 status, a transport failure, a timeout or an
// undecodable body. Callers treat it as "no data", never as a crash.
type ProviderError struct {
	Operation  string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("provider %s returned status %d", e.Operation, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("provider %s failed: %v", e.Operation, e.Err)
	default:
		return fmt.Sprintf("provider %s failed", e.Operation)
	}
}

// Unwrap returns the underlying transport or decode error, if any.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ProviderError) Is(target error) bool {
	_, ok := target.(*ProviderError)
	return ok
}

// NewProviderStatusError creates a ProviderError for an unexpected HTTP status.
func NewProviderStatusError(operation string, statusCode int) *ProviderError {
	return &ProviderError{
		Operation:  operation,
		StatusCode: statusCode,
	}
}

// NewProviderRequestError creates a ProviderError wrapping a transport or decode failure.
func NewProviderRequestError(operation string, err error) *ProviderError {
	return &ProviderError{
		Operation: operation,
		Err:       err,
	}
}

// ErrNotConfigured is wrapped by a ProviderError when no API key is set.
var ErrNotConfigured = errors.New("provider API key not configured")

// ValidationError is returned when request input is rejected.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is allows for error checking with errors.Is().
func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
