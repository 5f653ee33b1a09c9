// Package errors provides structured error handling for the relmate CLI.
// It includes categorized errors with actionable remediation guidance.
package errors

import "fmt"

// ErrorCategory represents the type of error that occurred.
type ErrorCategory int

const (
	// InvalidInput errors are caused by malformed arguments, such as a
	// version string that is not three dot-separated integers.
	InvalidInput ErrorCategory = iota
	// Environment errors are caused by missing or invalid CI environment
	// variables (output file, server URL, repository identifier).
	Environment
	// ExternalTool errors occur when an invoked tool (the Maven versions
	// plugin, a git operation) fails.
	ExternalTool
	// Runtime errors occur during command execution for any other reason.
	Runtime
)

// String returns a human-readable name for the error category.
func (c ErrorCategory) String() string {
	switch c {
	case InvalidInput:
		return "Invalid Input"
	case Environment:
		return "Environment Error"
	case ExternalTool:
		return "External Tool Failure"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is a structured error with category and remediation guidance.
type CLIError struct {
	// Category is the type of error (InvalidInput, Environment, etc.)
	Category ErrorCategory
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
	// Usage shows the correct command syntax (optional, for input errors).
	Usage string
	// cause is the wrapped underlying error, if any.
	cause error
}

// Error implements the error interface.
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the wrapped underlying error, if any.
func (e *CLIError) Unwrap() error {
	return e.cause
}

// NewInputError creates a new invalid-input error with remediation steps.
func NewInputError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    InvalidInput,
		Message:     message,
		Remediation: remediation,
	}
}

// NewInputErrorWithUsage creates an invalid-input error that includes correct usage syntax.
func NewInputErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    InvalidInput,
		Message:     message,
		Usage:       usage,
		Remediation: remediation,
	}
}

// NewEnvironmentError creates a new environment misconfiguration error.
func NewEnvironmentError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Environment,
		Message:     message,
		Remediation: remediation,
	}
}

// NewExternalToolError creates a new external tool failure error.
func NewExternalToolError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    ExternalTool,
		Message:     message,
		Remediation: remediation,
	}
}

// NewRuntimeError creates a new runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{
		Category:    Runtime,
		Message:     message,
		Remediation: remediation,
	}
}

// Wrap wraps an existing error with a CLIError, preserving the original message.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
		cause:       err,
	}
}

// WrapWithMessage wraps an error with a custom message and category.
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %v", message, err),
		Remediation: remediation,
		cause:       err,
	}
}

// AsCLIError attempts to convert an error to a CLIError.
// Returns nil if the error is not a CLIError.
func AsCLIError(err error) *CLIError {
	cliErr, ok := err.(*CLIError)
	if ok {
		return cliErr
	}
	return nil
}
