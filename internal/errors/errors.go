// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeValidation indicates malformed input or configuration
	// (clashing separators, negative input to an unsigned-only style)
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeParse indicates an input string matched no recognized pattern
	TypeParse Type = "PARSE_ERROR"

	// TypeConversion indicates an unknown unit symbol or ambiguous category
	TypeConversion Type = "CONVERSION_ERROR"

	// TypeTimezone indicates an unrecognized timezone identifier
	TypeTimezone Type = "TIMEZONE_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"
)

// Sentinels for errors.Is. Each matches every Error of its type.
var (
	ErrValidation = &Error{Type: TypeValidation}
	ErrParse      = &Error{Type: TypeParse}
	ErrConversion = &Error{Type: TypeConversion}
	ErrTimezone   = &Error{Type: TypeTimezone}
	ErrConfig     = &Error{Type: TypeConfig}
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same type. A target with a
// message only matches errors carrying that exact message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Type != e.Type {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// HasType checks if the error is of a specific type
func (e *Error) HasType(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error, or any error it wraps, is of a specific type
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// Validation creates a validation error
func Validation(format string, args ...interface{}) *Error {
	return Newf(TypeValidation, format, args...)
}

// Parsef creates a parse error
func Parsef(format string, args ...interface{}) *Error {
	return Newf(TypeParse, format, args...)
}

// Conversion creates a conversion error
func Conversion(format string, args ...interface{}) *Error {
	return Newf(TypeConversion, format, args...)
}

// Timezone creates a timezone error for an identifier
func Timezone(name string, cause error) *Error {
	return Wrap(TypeTimezone, fmt.Sprintf("unknown timezone %q", name), cause).
		WithContext("timezone", name)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}
