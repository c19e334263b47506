package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in radix.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrEmptyInput is returned when the numeral is empty or only whitespace.
	ErrEmptyInput = errors.New("radix: please enter a number to convert")

	// ErrUnsupportedBase is returned for a base outside {2, 8, 10, 16}.
	ErrUnsupportedBase = errors.New("radix: unsupported base")

	// ErrParseFailure is returned when a numeral passed digit validation but
	// could not be parsed.
	ErrParseFailure = errors.New("radix: invalid number format")

	// ErrOverflow is returned when the numeral does not fit in 64 bits.
	ErrOverflow = errors.New("radix: number exceeds the 64-bit range")

	// ErrWatchUnsupported is returned by Watch on repositories that cannot be observed.
	ErrWatchUnsupported = errors.New("radix: history backend does not support watching")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("radix: invalid configuration")
)

// InvalidDigitsError reports a numeral containing characters outside the
// digit set of its base.
type InvalidDigitsError struct {
	Base Base
}

func (e *InvalidDigitsError) Error() string {
	return fmt.Sprintf("radix: invalid characters for base-%d number", int(e.Base))
}

// StorageError wraps a failure of the durable history record.
// Op is one of "load", "save" or "clear".
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	switch e.Op {
	case "save":
		return fmt.Sprintf("radix: failed to save history: %v", e.Err)
	case "clear":
		return fmt.Sprintf("radix: failed to clear history: %v", e.Err)
	default:
		return fmt.Sprintf("radix: history %s: %v", e.Op, e.Err)
	}
}

func (e *StorageError) Unwrap() error { return e.Err }
