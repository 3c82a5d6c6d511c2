// Package errors provides structured error types for the gategrid engine.
//
// This package defines error codes and types that enable:
//   - Consistent rejection signals across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Placement codes describe why a gesture was rejected. Every rejected gesture
// leaves the editor state unchanged:
//   - UNKNOWN_OPERATOR: the operator id is not in the catalog
//   - NOT_FOUND: the tile id is not in the layout
//   - OUT_OF_BOUNDS: the footprint does not fit the grid
//   - BLOCKED_BY_EXPANSION: the footprint hits the expanded tile's columns
//     and neither side of it has room
//   - EXPANSION_WOULD_OVERFLOW: the expanded width does not fit from the
//     tile's current column
//   - NOT_EXPANDABLE: the tile's operator has no components
//
// RESIDUAL_OVERLAP, CLAMPED and RELOCATED are only ever attached to
// diagnostics, never returned.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownOperator, "unknown operator %q", id)
//	if errors.Is(err, errors.ErrCodeUnknownOperator) {
//	    // Handle rejection
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "failed to read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Placement rejections
	ErrCodeUnknownOperator        Code = "UNKNOWN_OPERATOR"
	ErrCodeNotFound               Code = "NOT_FOUND"
	ErrCodeOutOfBounds            Code = "OUT_OF_BOUNDS"
	ErrCodeBlockedByExpansion     Code = "BLOCKED_BY_EXPANSION"
	ErrCodeExpansionWouldOverflow Code = "EXPANSION_WOULD_OVERFLOW"
	ErrCodeNotExpandable          Code = "NOT_EXPANDABLE"

	// Diagnostics
	ErrCodeResidualOverlap Code = "RESIDUAL_OVERLAP"
	ErrCodeClamped         Code = "CLAMPED"
	ErrCodeRelocated       Code = "RELOCATED"

	// Input validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidGrid    Code = "INVALID_GRID"
	ErrCodeInvalidCatalog Code = "INVALID_CATALOG"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidScript  Code = "INVALID_SCRIPT"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsRejection reports whether err is one of the placement rejection codes,
// as opposed to a configuration or internal failure.
func IsRejection(err error) bool {
	switch GetCode(err) {
	case ErrCodeUnknownOperator, ErrCodeNotFound, ErrCodeOutOfBounds,
		ErrCodeBlockedByExpansion, ErrCodeExpansionWouldOverflow, ErrCodeNotExpandable:
		return true
	}
	return false
}
