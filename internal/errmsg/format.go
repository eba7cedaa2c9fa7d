// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpSongAdd  Op = "add song"
	OpSongPlay Op = "play song"

	// Startup
	OpConfigLoad  Op = "load configuration"
	OpDateResolve Op = "resolve today's date"
	OpInputRead   Op = "read input"

	// Output
	OpReportWrite Op = "write report"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Error pairs an operation with the error it failed with, so the message
// can be built where the error is reported rather than where it happened.
type Error struct {
	Op      Op
	Context string // optional, e.g. a file path
	Err     error
}

// Wrap returns nil when err is nil.
func Wrap(op Op, err error) error {
	return WrapWith(op, "", err)
}

// WrapWith is Wrap with additional context for the message.
func WrapWith(op Op, context string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Context: context, Err: err}
}

func (e *Error) Error() string {
	return FormatWith(e.Op, e.Context, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
