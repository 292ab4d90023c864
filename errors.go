package huffpack

import (
	"errors"
)

// FormatError reports compressed input that cannot be decoded: a wrong magic
// tag, a truncated or malformed header, or a payload that ends before EOF.
type FormatError struct {
	// Op names the stage that failed, e.g. "read header".
	Op string

	// Reason describes what was wrong with the input.
	Reason string
}

// Error fulfills the error interface.
func (e *FormatError) Error() string {
	return "huffpack: " + e.Op + ": " + e.Reason
}

// IsFormatError returns true if err is, or wraps, a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

func newFormatError(op string, reason string) error {
	return &FormatError{Op: op, Reason: reason}
}

var _ error = (*FormatError)(nil)
