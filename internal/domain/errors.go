package domain

import "fmt"

// ErrorKind classifies domain errors so the transport layer can map them
// to status codes without inspecting messages.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindPrecondition ErrorKind = "precondition"
)

// Error is the error type returned by domain and application code.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewValidationError reports invalid input data.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewNotFoundError reports a missing entity of the given type.
func NewNotFoundError(entity, key string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %q not found", entity, key)}
}

// NewConflictError reports a concurrent-modification conflict.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewPreconditionError reports an operation attempted before its inputs
// were in place. Callers treat it as "not ready", not as a failure.
func NewPreconditionError(message string) *Error {
	return &Error{Kind: KindPrecondition, Message: message}
}

// KindOf returns the ErrorKind of err, or an empty kind for non-domain errors.
func KindOf(err error) ErrorKind {
	if de, ok := err.(*Error); ok {
		return de.Kind
	}
	return ""
}
