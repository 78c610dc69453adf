package apperr

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/tend/internal/logger"
)

var (
	// ErrNotFound means a referenced habit (or other record) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidDate means a date string is not a valid YYYY-MM-DD calendar day.
	// Dates are validated at the command boundary; engine arithmetic never
	// sees a malformed date.
	ErrInvalidDate = errors.New("invalid date")
)

// NotFound wraps ErrNotFound with a description of what was missing.
func NotFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

// InvalidDate wraps ErrInvalidDate with the offending value.
func InvalidDate(day string) error {
	return fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, day)
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
