package apperrors

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by services and the HTTP error handler. Handlers never
// build status codes themselves; they return one of these and let the fiber
// ErrorHandler map it.

// ValidationError carries field-level messages for a 422 response.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d invalid field(s)", len(e.Fields))
}

func Validation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
	return e
}

// NotFoundError is an unresolvable token, id, or tenant.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

// InvalidActionError is a state-machine input outside the enumerated set.
type InvalidActionError struct {
	Action string
}

func (e *InvalidActionError) Error() string {
	return "invalid action: " + e.Action
}

func InvalidAction(action string) *InvalidActionError {
	return &InvalidActionError{Action: action}
}

// ErrInvalidTenant rejects a login whose credentials are valid but whose home
// agency is not the resolved tenant.
var ErrInvalidTenant = errors.New("user does not belong to this agency")

// ErrInvalidCredentials covers both unknown user and wrong password so the
// response does not reveal which.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ExternalServiceError wraps a failed third-party call. Local state is never
// mutated when one of these is returned.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return e.Service + " request failed"
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

func External(service string, err error) *ExternalServiceError {
	return &ExternalServiceError{Service: service, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
