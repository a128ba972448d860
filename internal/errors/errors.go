// Package errors provides centralized error types for the kyso launcher.
// Keep it minimal - only add what's actually used.
package errors

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeUnsupportedPlatform = "UNSUPPORTED_PLATFORM"
	CodeLaunchFailed        = "LAUNCH_FAILED"
)

// Sentinel errors for type checking with errors.Is()
var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrLaunchFailed        = errors.New("launch failed")
)

// Error is a typed error with code, message and optional details
type Error struct {
	Code    string
	Message string
	Err     error
	Details map[string]any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// WithDetail adds a detail to the error (chainable)
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// UnsupportedPlatform reports a platform with no companion binary
func UnsupportedPlatform(platform string) *Error {
	return (&Error{
		Code:    CodeUnsupportedPlatform,
		Message: fmt.Sprintf("no kyso binary is available for platform %q", platform),
		Err:     ErrUnsupportedPlatform,
	}).WithDetail("platform", platform)
}

// LaunchFailed reports a companion binary that could not be started.
// The returned error matches both ErrLaunchFailed and cause.
func LaunchFailed(path string, cause error) *Error {
	err := ErrLaunchFailed
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrLaunchFailed, cause)
	}
	return (&Error{
		Code:    CodeLaunchFailed,
		Message: fmt.Sprintf("failed to start %s", path),
		Err:     err,
	}).WithDetail("path", path)
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
