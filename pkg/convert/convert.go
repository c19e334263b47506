package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bft-labs/radix/internal/domain"
)

// Base is the radix a numeral is written in.
type Base = domain.Base

// Supported bases.
const (
	Binary      = domain.Binary
	Octal       = domain.Octal
	Decimal     = domain.Decimal
	Hexadecimal = domain.Hexadecimal
)

// InvalidDigitsError reports which base's digit set was violated.
type InvalidDigitsError = domain.InvalidDigitsError

// Errors returned by this package.
var (
	ErrEmptyInput      = domain.ErrEmptyInput
	ErrUnsupportedBase = domain.ErrUnsupportedBase
	ErrParseFailure    = domain.ErrParseFailure
	ErrOverflow        = domain.ErrOverflow
)

// Convert validates input as a numeral in base from and renders it in base to.
// Hex digits in the result are uppercase.
func Convert(input string, from, to Base) (string, error) {
	if err := Validate(input, from); err != nil {
		return "", err
	}
	if !to.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedBase, int(to))
	}
	v, err := Parse(input, from)
	if err != nil {
		return "", err
	}
	return Format(v, to), nil
}

// Validate checks input against the digit set of base.
// Checks run in order: empty input, supported base, digit set.
func Validate(input string, base Base) error {
	if strings.TrimSpace(input) == "" {
		return ErrEmptyInput
	}
	if !base.Valid() {
		return fmt.Errorf("%w: %d", ErrUnsupportedBase, int(base))
	}
	for _, r := range input {
		if !isDigit(r, base) {
			return &InvalidDigitsError{Base: base}
		}
	}
	return nil
}

// Parse reads a validated numeral in base as an unsigned 64-bit value.
func Parse(input string, base Base) (uint64, error) {
	v, err := strconv.ParseUint(input, int(base), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOverflow
		}
		return 0, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	return v, nil
}

// Format renders v in base with uppercase hex digits.
func Format(v uint64, base Base) string {
	return strings.ToUpper(strconv.FormatUint(v, int(base)))
}

// isDigit reports whether r belongs to the digit set of base, ignoring case.
func isDigit(r rune, base Base) bool {
	var d int
	switch {
	case r >= '0' && r <= '9':
		d = int(r - '0')
	case r >= 'a' && r <= 'f':
		d = int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		d = int(r-'A') + 10
	default:
		return false
	}
	return d < int(base)
}
