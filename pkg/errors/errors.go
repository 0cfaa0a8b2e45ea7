// Package errors provides structured error types for ariel.
//
// This package defines error codes and types that enable:
//   - Telling fatal extraction failures apart from recovered ones
//   - Machine-readable error codes for the CLI and the HTTP service
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Extraction codes describe where in the element tree a failure happened:
//   - ROOT_TYPE: the resolved root is not a graph element (fatal)
//   - ROOT_INVOCATION: the root composite failed while resolving (fatal)
//   - COMPONENT_INVOCATION: a composite below the root failed (recovered)
//   - RECURSION_LIMIT: the optional composite depth guard tripped (fatal)
//   - VALIDATION: a primitive is missing a required field
//
// The remaining codes follow the INVALID_* / NOT_FOUND / INTERNAL_* naming
// used for input handling.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeRootType, "root element must be a graph, got %s", kind)
//	if errors.Is(err, errors.ErrCodeRootType) {
//	    // Handle a bad root
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeComponentInvocation, cause, "component %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Extraction errors
	ErrCodeRootType            Code = "ROOT_TYPE"
	ErrCodeRootInvocation      Code = "ROOT_INVOCATION"
	ErrCodeComponentInvocation Code = "COMPONENT_INVOCATION"
	ErrCodeRecursionLimit      Code = "RECURSION_LIMIT"
	ErrCodeValidation          Code = "VALIDATION"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
// Only the outermost *Error is considered, so a ROOT_INVOCATION wrapping a
// VALIDATION error reports ROOT_INVOCATION.
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

// IsFatal reports whether err aborts extraction. Component invocation
// failures are recovered by the extractor and are the only non-fatal code.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return GetCode(err) != ErrCodeComponentInvocation
}
