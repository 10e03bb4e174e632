// Package errors defines the stable error code system for mcpsetup.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract; scripts may match on them.
const (
	EUsage    Code = "E_USAGE"
	EInternal Code = "E_INTERNAL"

	EConfigInvalid Code = "E_CONFIG_INVALID"

	// External command codes
	ECommandFailed Code = "E_COMMAND_FAILED"
	ECommandStart  Code = "E_COMMAND_START"

	// Setup step codes
	EWriteFailed     Code = "E_WRITE_FAILED"
	ESetupIncomplete Code = "E_SETUP_INCOMPLETE"

	// Prerequisite codes (doctor)
	EGitNotInstalled    Code = "E_GIT_NOT_INSTALLED"
	EPythonNotInstalled Code = "E_PYTHON_NOT_INSTALLED"
	EEnvTemplateInvalid Code = "E_ENV_TEMPLATE_INVALID"
)

// AppError is the standard error type for mcpsetup errors.
type AppError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError with the given code and message.
func New(code Code, msg string) error {
	return &AppError{Code: code, Msg: msg}
}

// NewWithDetails creates a new AppError with code, message, and details.
// The details map is copied (nil if empty).
func NewWithDetails(code Code, msg string, details map[string]string) error {
	return &AppError{Code: code, Msg: msg, Details: copyDetails(details)}
}

// Wrap creates a new AppError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &AppError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new AppError wrapping an underlying error with details.
// The details map is copied (nil if empty).
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &AppError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not an AppError.
func GetCode(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// AsAppError returns (*AppError, true) if err is or wraps an AppError.
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// Detail returns the named detail of err, or "" if err carries no such detail.
func Detail(err error, key string) string {
	ae, ok := AsAppError(err)
	if !ok || ae.Details == nil {
		return ""
	}
	return ae.Details[key]
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the appropriate exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var ae *AppError
	if errors.As(err, &ae) {
		fmt.Fprintf(w, "error_code: %s\n", ae.Code)
		fmt.Fprintln(w, ae.Msg)
	} else {
		fmt.Fprintln(w, err.Error())
	}
}
