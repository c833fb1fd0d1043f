// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
)

// ActionableError is an error with context for user-facing error messages.
// It carries what operation failed, what resource was involved, and optional
// suggestions for fixing the problem. The compiler uses it for every fatal
// I/O failure (unreadable input file, unwritable output tree).
type ActionableError struct {
	// Operation describes what was being attempted (e.g. "open input file",
	// "write zone file").
	Operation string

	// Resource identifies the file or path involved (optional).
	Resource string

	// Suggestions provides hints on how to fix the issue (optional).
	Suggestions []string

	// Cause is the underlying error that triggered this one (optional).
	Cause error
}

// WrapOp wraps an error with operation context. Returns nil for a nil err so
// it can sit directly on return paths.
func WrapOp(err error, operation string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Cause: err}
}

// WrapPath wraps an error with operation and resource context.
func WrapPath(err error, operation, resource string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Resource: resource, Cause: err}
}

// WithSuggestion appends a remediation hint and returns the receiver for
// chaining.
func (e *ActionableError) WithSuggestion(s string) *ActionableError {
	e.Suggestions = append(e.Suggestions, s)
	return e
}

// Error implements the error interface. Returns a concise message suitable
// for default (non-verbose) output.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for use with errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format renders the error for display. In verbose mode the suggestions and
// full cause chain are included, one per line.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder
	msg.WriteString(e.Error())

	if !verbose {
		return msg.String()
	}

	for _, s := range e.Suggestions {
		msg.WriteString("\n  hint: ")
		msg.WriteString(s)
	}

	for cause := errors.Unwrap(e); cause != nil; cause = errors.Unwrap(cause) {
		msg.WriteString("\n  caused by: ")
		msg.WriteString(cause.Error())
	}

	return msg.String()
}
