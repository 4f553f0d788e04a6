package apperrors

import (
	"errors"
	"fmt"

	"github.com/go-stack/stack"
)

// Error taxonomy. Handlers map these with errors.Is.
var (
	ErrValidationFailed = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("access token required")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	ErrTooManyRequests = errors.New("too many requests")
)

// CustomError carries a client-facing message, the sentinel it belongs to and
// the call stack at the point it was created.
type CustomError struct {
	Err     error
	Message string
	Cause   error
	Stack   stack.CallStack
}

// Error implements error interface
func (e *CustomError) Error() string {
	switch {
	case e.Message != "" && e.Cause != nil:
		return e.Message + ": " + e.Cause.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes both the sentinel and the cause to errors.Is / errors.As
func (e *CustomError) Unwrap() []error {
	var errs []error
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// PublicMessage is the text safe to return to a client
func (e *CustomError) PublicMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

func newError(kind error, cause error, format string, args ...interface{}) *CustomError {
	return &CustomError{
		Err:     kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
		Stack:   stack.Trace().TrimBelow(stack.Caller(2)).TrimRuntime(),
	}
}

// NewValidationError reports a bad request payload or parameter
func NewValidationError(format string, args ...interface{}) error {
	return newError(ErrValidationFailed, nil, format, args...)
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(format string, args ...interface{}) error {
	return newError(ErrResourceNotFound, nil, format, args...)
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(format string, args ...interface{}) error {
	return newError(ErrConflict, nil, format, args...)
}

// NewInvalidCredentialsError is the single error for every failed login
func NewInvalidCredentialsError() error {
	return newError(ErrInvalidCredentials, nil, "Invalid credentials")
}

// NewTooManyRequestsError reports an exhausted attempt budget
func NewTooManyRequestsError(format string, args ...interface{}) error {
	return newError(ErrTooManyRequests, nil, format, args...)
}

// Wrap attaches a stack and message to an unexpected failure of a backing service
func Wrap(cause error, format string, args ...interface{}) error {
	return newError(nil, cause, format, args...)
}

// PublicMessage returns the client-facing message of err, or "" when err carries none
func PublicMessage(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Err != nil {
		return ce.PublicMessage()
	}
	return ""
}

// MarshalStack is installed as zerolog's ErrorStackMarshaler
func MarshalStack(err error) interface{} {
	var ce *CustomError
	if !errors.As(err, &ce) || len(ce.Stack) == 0 {
		return nil
	}
	frames := make([]string, 0, len(ce.Stack))
	for _, call := range ce.Stack {
		frames = append(frames, fmt.Sprintf("%+v %n", call, call))
	}
	return frames
}
