package util

import (
	"fmt"
	"io"
)

// ErrorContext provides standardized error formatting for different operations
type ErrorContext string

const (
	ConfigError     ErrorContext = "Config"
	ValidationError ErrorContext = "Validation"
	MailError       ErrorContext = "Mail"
	SetupError      ErrorContext = "Setup"
)

// FormatError creates a standardized error message with context
func FormatError(context ErrorContext, operation string, err error) string {
	return fmt.Sprintf("%s error: %s - %v", context, operation, err)
}

// FprintError writes a standardized error message to w.
func FprintError(w io.Writer, context ErrorContext, operation string, err error) {
	Red.Fprintln(w, FormatError(context, operation, err))
}
