// Package errors provides standardized error types for the gvm-config tool.
//
// The errors package defines coded error types that let the CLI classify
// failures of the configuration resolver and the template render pipeline
// and print consistent messages.
//
// # Error Types
//
// Error is the primary error type, containing:
//   - Code: Categorizes the error (SOURCE, PARSE, DESTINATION, etc.)
//   - Message: Human-readable error description
//   - Path: The file or directory involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Sentinel Errors
//
// Every code has a sentinel for classification:
//
//	errors.ErrInvalidArgument // malformed flag, env or settings value
//	errors.ErrSource          // template source missing or not a directory
//	errors.ErrTemplateParse   // a template failed to parse
//	errors.ErrDestination     // destination cannot be used
//	errors.ErrRender          // a single template failed to render or write
//
// # Usage
//
//	return errors.Source("templates", fs.ErrNotExist)
//	// template source 'templates': file does not exist
//	return errors.Parse("nginx.conf.template", err)
//
//	if errors.Is(err, errors.ErrSource) {
//	    // Handle missing template directory
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeArgument    ErrorCode = "ARGUMENT"    // Malformed option value
	ErrCodeConfig      ErrorCode = "CONFIG"      // Settings or dotenv file error
	ErrCodeSource      ErrorCode = "SOURCE"      // Template source directory error
	ErrCodeParse       ErrorCode = "PARSE"       // Template parse error
	ErrCodeDestination ErrorCode = "DESTINATION" // Destination directory error
	ErrCodeRender      ErrorCode = "RENDER"      // Per-template render or write error
)

// Error represents a structured error with context about the operation.
type Error struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Path    string    // File or directory (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" && e.Err != nil {
		return fmt.Sprintf("%s '%s': %v", e.Message, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s '%s'", e.Message, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors, one per code. Use these with errors.Is() for error checking.
var (
	ErrInvalidArgument = &Error{Code: ErrCodeArgument, Message: "invalid argument"}
	ErrConfig          = &Error{Code: ErrCodeConfig, Message: "invalid settings"}
	ErrSource          = &Error{Code: ErrCodeSource, Message: "invalid template source"}
	ErrTemplateParse   = &Error{Code: ErrCodeParse, Message: "template parse failed"}
	ErrDestination     = &Error{Code: ErrCodeDestination, Message: "invalid destination"}
	ErrRender          = &Error{Code: ErrCodeRender, Message: "render failed"}
)

// InvalidValue creates an argument error for an option value that failed to parse.
// origin names where the value came from (flag, env var or settings file).
func InvalidValue(option, origin, value string, err error) error {
	return &Error{
		Code:    ErrCodeArgument,
		Message: fmt.Sprintf("invalid value %q for %s (from %s)", value, option, origin),
		Err:     err,
	}
}

// Config creates a settings error for the given file.
func Config(path, msg string, err error) error {
	return &Error{
		Code:    ErrCodeConfig,
		Message: msg,
		Path:    path,
		Err:     err,
	}
}

// Source creates an error for an unusable template source directory.
// The message reads "template source '<path>': <cause>".
func Source(path string, err error) error {
	return &Error{
		Code:    ErrCodeSource,
		Message: "template source",
		Path:    path,
		Err:     err,
	}
}

// Parse creates an error for a template that failed to parse.
func Parse(path string, err error) error {
	return &Error{
		Code:    ErrCodeParse,
		Message: "failed to parse template",
		Path:    path,
		Err:     err,
	}
}

// Destination creates an error for an unusable destination directory.
func Destination(path, msg string, err error) error {
	return &Error{
		Code:    ErrCodeDestination,
		Message: msg,
		Path:    path,
		Err:     err,
	}
}

// Render creates a per-template error.
func Render(path, msg string, err error) error {
	return &Error{
		Code:    ErrCodeRender,
		Message: msg,
		Path:    path,
		Err:     err,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &Error{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
