// Package apperrors defines the error taxonomy shared across the service.
//
// Every error that crosses the request boundary is one of four kinds:
// validation (400), not found (404), gateway (502) or persistence (500).
// Handlers translate them with HTTPStatus and Code; nothing is retried and
// nothing is swallowed.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown entity id. Resource names the entity kind
// ("product", "order", ...) so messages can name the missing id precisely.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NotFound builds a NotFoundError for the given resource and id.
func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// GatewayError reports a failure from the external payment gateway. Status
// carries the gateway's HTTP status when one was received, zero otherwise.
type GatewayError struct {
	Status  int
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("payment gateway: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("payment gateway: %s", e.Message)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// PersistenceError wraps a storage failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError for the named operation.
func Persistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// HTTPStatus maps an error to the status code it is surfaced with.
func HTTPStatus(err error) int {
	var (
		ve *ValidationError
		ne *NotFoundError
		ge *GatewayError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &ne):
		return http.StatusNotFound
	case errors.As(err, &ge):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the machine-readable error code used in JSON error bodies.
func Code(err error) string {
	var (
		ve *ValidationError
		ne *NotFoundError
		ge *GatewayError
	)
	switch {
	case errors.As(err, &ve):
		return "validation_error"
	case errors.As(err, &ne):
		return "not_found"
	case errors.As(err, &ge):
		return "gateway_error"
	default:
		return "internal_error"
	}
}
