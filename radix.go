// Package radix converts numerals between bases 2, 8, 10 and 16 and keeps a
// persisted history of the last ten conversions.
//
// Example usage:
//
//	out, err := radix.Convert("FF", radix.Hexadecimal, radix.Binary) // "11111111"
//
//	s, err := radix.New(radix.Config{HistoryDir: "/path/to/dir"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Close()
//	s.Load(ctx)
//	rec, err := s.Convert(ctx, "1010", radix.Binary, radix.Decimal)
package radix

import (
	"github.com/bft-labs/radix/pkg/convert"
	pkgradix "github.com/bft-labs/radix/pkg/radix"
)

// Config holds the configuration of a Session.
// The zero value is valid; see pkg/radix.Config.SetDefaults.
type Config = pkgradix.Config

// Session converts numerals and maintains the persisted history.
type Session = pkgradix.Session

// Option configures optional behavior of a Session.
type Option = pkgradix.Option

// Base is the radix a numeral is written in.
type Base = pkgradix.Base

// ConversionRecord is one successful conversion as shown and persisted.
type ConversionRecord = pkgradix.ConversionRecord

// History is the most-recent-first log of conversions, at most ten long.
type History = pkgradix.History

// Supported bases.
const (
	Binary      = pkgradix.Binary
	Octal       = pkgradix.Octal
	Decimal     = pkgradix.Decimal
	Hexadecimal = pkgradix.Hexadecimal
)

// New creates a Session. Call Load on it once before converting.
func New(cfg Config, opts ...Option) (*Session, error) {
	return pkgradix.New(cfg, opts...)
}

// Convert validates input in base from and renders it in base to without
// touching the history.
func Convert(input string, from, to Base) (string, error) {
	return convert.Convert(input, from, to)
}
