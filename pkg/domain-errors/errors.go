// Package domainerrors carries typed error codes from the portal boundary up
// to presentation. Services and clients return these (optionally wrapped) so
// callers can branch on kind without string matching.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for callers.
type Code string

const (
	// CodeBadRequest marks a request the portal could not parse.
	CodeBadRequest Code = "bad_request"
	// CodeValidation marks malformed or incomplete input; Fields may carry
	// per-field messages for display.
	CodeValidation Code = "validation"
	// CodeUnauthorized marks rejected credentials or a rejected token.
	CodeUnauthorized Code = "unauthorized"
	// CodeForbidden marks an authenticated but disallowed operation.
	CodeForbidden Code = "forbidden"
	// CodeNotFound marks an absent resource. Absence is a valid state for
	// some resources (a family profile before first submission).
	CodeNotFound Code = "not_found"
	// CodeConflict marks an operation rejected by current resource state.
	CodeConflict Code = "conflict"
	// CodeTimeout marks a bounded wait that expired.
	CodeTimeout Code = "timeout"
	// CodeUnavailable marks a transport-level failure, potentially transient.
	CodeUnavailable Code = "unavailable"
	// CodeInternal marks everything else.
	CodeInternal Code = "internal"
)

// Error is the concrete typed error. Fields is only populated for
// CodeValidation and holds server- or client-side field messages.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds a typed error with no underlying cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds a typed error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. The cause stays
// reachable through errors.Is/As.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// WithFields builds a validation error carrying per-field messages.
func WithFields(code Code, message string, fields map[string]string) *Error {
	return &Error{Code: code, Message: message, Fields: fields}
}

// HasCode reports whether err or anything it wraps carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// CodeOf returns the code of the outermost typed error, or CodeInternal when
// err carries no code.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// FieldsOf returns field-level detail if err carries any, else nil.
func FieldsOf(err error) map[string]string {
	var de *Error
	if errors.As(err, &de) {
		return de.Fields
	}
	return nil
}
