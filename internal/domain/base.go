package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Base is the radix a numeral is written in.
type Base int

// Supported bases.
const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// Bases lists the supported bases in menu order.
var Bases = []Base{Binary, Octal, Decimal, Hexadecimal}

// Valid reports whether b is one of the supported bases.
func (b Base) Valid() bool {
	switch b {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

// Name returns the human readable name of the base.
func (b Base) Name() string {
	switch b {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	default:
		return "Base " + strconv.Itoa(int(b))
	}
}

func (b Base) String() string { return strconv.Itoa(int(b)) }

// ParseBase accepts a radix as a number ("16") or a name ("hex", "binary").
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2", "bin", "binary":
		return Binary, nil
	case "8", "oct", "octal":
		return Octal, nil
	case "10", "dec", "decimal":
		return Decimal, nil
	case "16", "hex", "hexadecimal":
		return Hexadecimal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBase, s)
}

// Set implements pflag.Value so a Base can be bound directly to a flag.
func (b *Base) Set(s string) error {
	v, err := ParseBase(s)
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Type implements pflag.Value.
func (b *Base) Type() string { return "base" }
