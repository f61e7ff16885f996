// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// ErrSnapshotNotFound is returned by snapshot stores when a key has never
// been written. A miss is an expected condition, not a store failure.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ValidationError represents a rejected caller-supplied parameter
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// FetchError represents a failed remote fetch. It is distinguishable from an
// empty result set: the pipeline never masks one as the other.
type FetchError struct {
	Service string
	Err     error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch failed for service '%s': %v", e.Service, e.Err)
}

// Unwrap returns the underlying fetch failure
func (e *FetchError) Unwrap() error {
	return e.Err
}

// StoreError represents a snapshot store failure (as opposed to a miss)
type StoreError struct {
	Op  string
	Key string
	Err error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("snapshot store %s failed for key '%s': %v", e.Op, e.Key, e.Err)
}

// Unwrap returns the underlying store failure
func (e *StoreError) Unwrap() error {
	return e.Err
}

// UnknownServiceError represents a request naming a service tag that is not
// in the source registry
type UnknownServiceError struct {
	Service string
}

// Error implements the error interface
func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("unknown service '%s'", e.Service)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsUnknownService checks if an error is an UnknownServiceError
func IsUnknownService(err error) bool {
	var unknownErr *UnknownServiceError
	return errors.As(err, &unknownErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
