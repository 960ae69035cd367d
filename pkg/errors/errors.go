package errors

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors via errors.Is.
var (
	ErrAlreadySubscribed = errors.New("already subscribed")
	ErrNotSubscribed     = errors.New("not subscribed")
	ErrInvalidID         = errors.New("invalid subscriber id")

	// ErrInvalidInput is matched by every ValidationError.
	ErrInvalidInput = errors.New("invalid input")
)

// Error is implemented by every typed error in this module.
type Error interface {
	error
	Code() string
	Message() string
	Unwrap() error
}

// BaseError carries the code, message and optional cause shared by all
// typed errors.
type BaseError struct {
	code    string
	message string
	cause   error
}

func (e *BaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Code returns the error code.
func (e *BaseError) Code() string {
	return e.code
}

// Message returns the message without the cause.
func (e *BaseError) Message() string {
	return e.message
}

// Unwrap returns the underlying cause.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// ValidationError reports one invalid setting. Field is a dotted path such
// as "logging.level"; Hint, when set, tells the user what would be valid.
type ValidationError struct {
	*BaseError
	Field string
	Value interface{}
	Hint  string
}

// NewValidationError creates a ValidationError with CodeValidation.
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		BaseError: &BaseError{code: CodeValidation, message: message},
		Field:     field,
		Value:     value,
	}
}

// NewConfigError creates a ValidationError for a configuration key, coded
// CodeConfigError.
func NewConfigError(field, message, hint string, value interface{}) *ValidationError {
	return &ValidationError{
		BaseError: &BaseError{code: CodeConfigError, message: message},
		Field:     field,
		Value:     value,
		Hint:      hint,
	}
}

func (e *ValidationError) Error() string {
	msg := e.message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Hint != "" {
		msg += "; " + e.Hint
	}
	return msg
}

// Is reports sentinel equivalence for errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Wrap adds context to err. The code of the first typed error in the chain
// is kept; anything else becomes CodeInternal.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	code := CodeInternal
	var typed Error
	if errors.As(err, &typed) {
		code = typed.Code()
	}
	return &BaseError{code: code, message: message, cause: err}
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// New creates an internal error with a message.
func New(message string) error {
	return &BaseError{code: CodeInternal, message: message}
}

// Newf creates an internal error with a formatted message.
func Newf(format string, args ...interface{}) error {
	return New(fmt.Sprintf(format, args...))
}
