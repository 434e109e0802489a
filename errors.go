// Package rbf structured error types for better error handling
package rbf

import (
	"errors"
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Shape errors: weight/row count disagreement, ragged coordinate rows
	ErrTypeShape ErrorType = iota
	// Invalid argument errors
	ErrTypeInvalidArg
	// Not implemented errors
	ErrTypeNotImplemented
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rbf %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("rbf %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeShape:
		return "Shape"
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeNotImplemented:
		return "NotImplemented"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewShapeError creates a shape-mismatch error
func NewShapeError(op string, message string) error {
	return &Error{
		Type:    ErrTypeShape,
		Op:      op,
		Message: message,
	}
}

// NewInvalidArgError creates an invalid argument error
func NewInvalidArgError(op string, message string) error {
	return &Error{
		Type:    ErrTypeInvalidArg,
		Op:      op,
		Message: message,
	}
}

// IsShapeError checks if an error is a shape-mismatch error
func IsShapeError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == ErrTypeShape
	}
	return false
}

// IsInvalidArgError checks if an error is an invalid argument error
func IsInvalidArgError(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == ErrTypeInvalidArg
	}
	return false
}
