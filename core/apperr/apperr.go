package apperr

import "fmt"

// SourceUnavailable indicates that an external data provider could not be
// reached or did not return a usable payload. It carries the offending
// endpoint so handlers can report which upstream failed.
type SourceUnavailable struct {
	Endpoint string
	Cause    error
}

func (e *SourceUnavailable) Error() string {
	return fmt.Sprintf("external source unavailable: %s: %v", e.Endpoint, e.Cause)
}

func (e *SourceUnavailable) Unwrap() error {
	return e.Cause
}

// NotFound indicates that no record matched the lookup.
type NotFound struct {
	Resource string
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// StoreError wraps a persistence failure. Op names the failing operation
// (e.g. "list countries") for log correlation.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error during %s: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// ValidationError indicates malformed client input. Currently reserved;
// unknown query values fall back to defaults instead of rejecting.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
