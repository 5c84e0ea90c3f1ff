package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigEncode     = fmt.Errorf("failed to encode config")
	ErrInvalidServerURL = fmt.Errorf("invalid server URL")

	// Local state errors.
	ErrStateRead  = fmt.Errorf("failed to read local state")
	ErrStateWrite = fmt.Errorf("failed to write local state")

	// Package errors.
	ErrPackageNotFound = fmt.Errorf("package not found")
	ErrNotInstalled    = fmt.Errorf("package is not installed")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
