package radix

import "github.com/bft-labs/radix/internal/domain"

// Base is the radix a numeral is written in.
type Base = domain.Base

// Supported bases.
const (
	Binary      = domain.Binary
	Octal       = domain.Octal
	Decimal     = domain.Decimal
	Hexadecimal = domain.Hexadecimal
)

// ConversionRecord is one successful conversion.
type ConversionRecord = domain.ConversionRecord

// History is the most-recent-first log of conversions.
type History = domain.History

// InvalidDigitsError reports which base's digit set the input violated.
type InvalidDigitsError = domain.InvalidDigitsError

// StorageError reports a failed save or clear of the durable history.
type StorageError = domain.StorageError

// Errors returned by a Session. Check them with errors.Is.
var (
	ErrEmptyInput       = domain.ErrEmptyInput
	ErrUnsupportedBase  = domain.ErrUnsupportedBase
	ErrParseFailure     = domain.ErrParseFailure
	ErrOverflow         = domain.ErrOverflow
	ErrWatchUnsupported = domain.ErrWatchUnsupported
	ErrInvalidConfig    = domain.ErrInvalidConfig
)
