package clouddatabases

import (
	"errors"
	"fmt"
)

// ArgumentError reports a missing or empty operation parameter. It is returned
// before any request is sent.
type ArgumentError struct {
	Name   string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("parameter '%s' must be set and non-empty", e.Name)
	}
	return fmt.Sprintf("parameter '%s' %s", e.Name, e.Reason)
}

// ModelError reports a required property that is absent from a model, or a
// property whose value is not allowed. Reason is empty for a missing property.
type ModelError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ModelError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("required property '%s' not found for %s", e.Field, e.Entity)
	}
	return fmt.Sprintf("invalid value for '%s' in %s (%s)", e.Field, e.Entity, e.Reason)
}

// VariantError is returned when a variant family is asked to produce a value
// without a concrete shape, e.g. an unknown deployment type.
type VariantError struct {
	Family       string
	Discriminant string
}

func (e *VariantError) Error() string {
	if e.Discriminant == "" {
		return fmt.Sprintf("%s is a variant family and cannot be instantiated directly; use one of its concrete types", e.Family)
	}
	return fmt.Sprintf("%s has no concrete type for '%s'", e.Family, e.Discriminant)
}

// ServiceError wraps a response with a non-2xx status code. The body is kept
// verbatim.
type ServiceError struct {
	StatusCode int
	Method     string
	Path       string
	TraceID    string
	Body       []byte
	Response   *DetailedResponse
}

func (e *ServiceError) Error() string {
	path := "<path>"
	if e.Method != "" || e.Path != "" {
		path = fmt.Sprintf("[%s %s]", e.Method, e.Path)
	}
	traceID := "<trace_id>"
	if e.TraceID != "" {
		traceID = e.TraceID
	}
	return fmt.Sprintf("%s[failed with status %d][%s] %s", path, e.StatusCode, traceID, e.Body)
}

func IsArgumentError(err error) bool {
	var target *ArgumentError
	return errors.As(err, &target)
}

func IsModelError(err error) bool {
	var target *ModelError
	return errors.As(err, &target)
}

func IsVariantError(err error) bool {
	var target *VariantError
	return errors.As(err, &target)
}

// IsServiceError reports whether err came back from the service, and if so
// returns it.
func IsServiceError(err error) (*ServiceError, bool) {
	var target *ServiceError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
