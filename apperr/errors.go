// Package apperr defines the error kinds shared by services, repositories and
// the HTTP layer. Callers test kinds with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrIO         = errors.New("storage unavailable")

	// ErrInvalidTransition is a Conflict raised by the LR state machine.
	ErrInvalidTransition = fmt.Errorf("%w: invalid transition", ErrConflict)
)

// Error carries a kind sentinel plus the offending field, if any.
type Error struct {
	Kind    error
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func Validation(field, format string, args ...any) error {
	return &Error{Kind: ErrValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

func NotFound(entity, id string) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf("%s %q not found", entity, id)}
}

func Conflict(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

func InvalidTransition(from, event string) error {
	return &Error{
		Kind:    ErrInvalidTransition,
		Message: fmt.Sprintf("cannot %s a lorry receipt in status %q", event, from),
	}
}

// IO wraps a persistence failure.
func IO(op string, err error) error {
	return &Error{Kind: ErrIO, Message: op, Err: err}
}

// FieldOf returns the field name attached to err, or "".
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Field
	}
	return ""
}
