package errors

import (
	stderrors "errors"
	"fmt"
)

// Error types for different categories of failures
const (
	// Unfolding errors
	ErrMalformedFoldArgument = "MALFORMED_FOLD_ARGUMENT"
	ErrEmptyEnumeration      = "EMPTY_ENUMERATION"
	ErrEmptyArgumentList     = "EMPTY_ARGUMENT_LIST"

	// Input/File errors
	ErrInputRead   = "INPUT_READ_ERROR"
	ErrConfigParse = "CONFIG_PARSE_ERROR"
)

// DispatchError represents a structured error with type and context
type DispatchError struct {
	Type    string
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *DispatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap allows error unwrapping
func (e *DispatchError) Unwrap() error {
	return e.Cause
}

// New creates a new DispatchError
func New(errorType, message string) *DispatchError {
	return &DispatchError{
		Type:    errorType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Wrap creates a new DispatchError wrapping an existing error
func Wrap(errorType, message string, cause error) *DispatchError {
	return &DispatchError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context information to the error
func (e *DispatchError) WithContext(key string, value interface{}) *DispatchError {
	e.Context[key] = value
	return e
}

// GetContext returns context value by key
func (e *DispatchError) GetContext(key string) (interface{}, bool) {
	value, exists := e.Context[key]
	return value, exists
}

// Helper constructors for the error taxonomy

// NewMalformedFoldArgument reports a folded argument whose captured content
// failed variant-specific validation (bad integers, zero step).
func NewMalformedFoldArgument(span, reason string) *DispatchError {
	return New(ErrMalformedFoldArgument, fmt.Sprintf("invalid folded argument %q: %s", span, reason)).
		WithContext("span", span)
}

// NewEmptyEnumeration reports an enumeration with zero items.
func NewEmptyEnumeration(span string) *DispatchError {
	return New(ErrEmptyEnumeration, fmt.Sprintf("enumeration %q contains no items", span)).
		WithContext("span", span)
}

// NewEmptyArgumentList reports that there was nothing to unfold or name.
func NewEmptyArgumentList(message string) *DispatchError {
	return New(ErrEmptyArgumentList, message)
}

// NewInputError creates an input-related error
func NewInputError(message string, cause error) *DispatchError {
	return Wrap(ErrInputRead, message, cause)
}

// NewConfigParseError reports an unreadable or unparsable cluster config file.
// An absent file is not an error; the queue registry treats it as an unknown cluster.
func NewConfigParseError(path string, cause error) *DispatchError {
	return Wrap(ErrConfigParse, fmt.Sprintf("cannot load cluster config %s", path), cause).
		WithContext("path", path)
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errorType string) bool {
	var dispErr *DispatchError
	if stderrors.As(err, &dispErr) {
		return dispErr.Type == errorType
	}
	return false
}
