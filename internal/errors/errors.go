// Package errors provides a lightweight structured error type (CodedocError)
// for category-based classification across the pipeline and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory classifies a codedoc error for exit-code mapping and logging.
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Input-side processing errors
	CategoryParse  ErrorCategory = "parse"
	CategorySource ErrorCategory = "source"

	// Output-side processing errors
	CategoryRender     ErrorCategory = "render"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Infrastructure errors
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// CodedocError is a structured error with category, severity, and context.
type CodedocError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for CodedocError.
type ContextFields map[string]any

// Error implements the error interface.
func (e *CodedocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling.
func (e *CodedocError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error.
func (e *CodedocError) WithContext(key string, value any) *CodedocError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new CodedocError.
func New(category ErrorCategory, severity ErrorSeverity, message string) *CodedocError {
	return &CodedocError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new CodedocError that wraps an existing error.
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *CodedocError {
	return &CodedocError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsFatal reports whether err is a CodedocError carrying fatal severity.
// Non-CodedocError errors are treated as fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if ce, ok := err.(*CodedocError); ok {
		return ce.Severity == SeverityFatal
	}
	return true
}
