package core

import "github.com/pkg/errors"

// FieldError reports a problem with one named request field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is any request-payload error a handler should answer
// with a 400. Fields, when present, carries per-field messages.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown signals that the service cannot carry on; the API error
// handler escalates it into a graceful stop. Produced when the store
// reports a lost connection.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown checks whether a shutdown error is hiding anywhere inside err.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
