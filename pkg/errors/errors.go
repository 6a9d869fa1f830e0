// Package errors provides custom error types for pacprune.
// These errors enable programmatic error checking and carry enough
// context to map failures onto the process exit codes the tool promises.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// As is an alias for the standard library errors.As.
var As = errors.As

// Common sentinel errors for pacprune
var (
	// ErrToolNotFound indicates a required external tool is not on PATH
	ErrToolNotFound = errors.New("tool not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")
)

// Process exit codes. Zero is reserved for success, a clean "nothing to
// do", and a declined confirmation prompt.
const (
	// ExitOK indicates success.
	ExitOK = 0

	// ExitFailure covers missing tools and any other internal error.
	ExitFailure = 1

	// ExitUsage covers unrecognized flags and invalid arguments.
	ExitUsage = 2
)

// ToolNotFoundError indicates that none of the acceptable external tools
// for an operation could be found on PATH.
type ToolNotFoundError struct {
	Tools []string
	Hint  string
}

// Error implements the error interface
func (e *ToolNotFoundError) Error() string {
	msg := fmt.Sprintf("required tool not found: %s", strings.Join(e.Tools, " or "))
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// Is implements errors.Is support
func (e *ToolNotFoundError) Is(target error) bool {
	return target == ErrToolNotFound
}

// NewToolNotFoundError creates a new ToolNotFoundError
func NewToolNotFoundError(hint string, tools ...string) *ToolNotFoundError {
	return &ToolNotFoundError{Tools: tools, Hint: hint}
}

// UsageError represents a command line usage problem such as an
// unrecognized flag or a malformed argument.
type UsageError struct {
	Err error
}

// Error implements the error interface
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap implements errors.Unwrap
func (e *UsageError) Unwrap() error {
	return e.Err
}

// NewUsageError creates a new UsageError
func NewUsageError(err error) *UsageError {
	return &UsageError{Err: err}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ParseError represents an error when parsing text from an external
// tool or bundled data file
type ParseError struct {
	Source  string // what produced the text
	Input   string // offending line or fragment
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("parse error from %s (%q): %s", e.Source, e.Input, e.Message)
	}
	return fmt.Sprintf("parse error from %s: %s", e.Source, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(source, input, message string, err error) *ParseError {
	return &ParseError{Source: source, Input: input, Message: message, Err: err}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "open"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// ProcessError represents an error from an external process or command
type ProcessError struct {
	Operation string // What operation was being performed
	Command   string // The command that was executed
	Output    string // Stdout/stderr output from the process
	ExitCode  int    // Exit code if available
	Err       error  // Underlying error
}

// Error implements the error interface
func (e *ProcessError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("process error during %s (command: %s): %v\nOutput: %s", e.Operation, e.Command, e.Err, e.Output)
	}
	return fmt.Sprintf("process error during %s (command: %s): %v", e.Operation, e.Command, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// NewProcessError creates a new ProcessError
func NewProcessError(operation, command, output string, exitCode int, err error) *ProcessError {
	return &ProcessError{
		Operation: operation,
		Command:   command,
		Output:    output,
		ExitCode:  exitCode,
		Err:       err,
	}
}

// Helper functions for error checking

// IsToolNotFound checks if an error indicates a missing external tool
func IsToolNotFound(err error) bool {
	return errors.Is(err, ErrToolNotFound)
}

// IsUsage checks if an error is a command line usage error
func IsUsage(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// ExitCode maps an error onto the process exit code contract: nil is 0,
// usage errors are 2, external command failures propagate the command's
// own exit code, and everything else (missing tools included) is 1.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if IsUsage(err) {
		return ExitUsage
	}
	var procErr *ProcessError
	if errors.As(err, &procErr) && procErr.ExitCode > 0 {
		return procErr.ExitCode
	}
	return ExitFailure
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapParse wraps an error as a ParseError
func WrapParse(source, input string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(source, input, err.Error(), err)
}

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
