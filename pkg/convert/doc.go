// Package convert validates numerals and converts them between bases.
//
// Conversion runs in two explicit steps so each can be tested and reported
// on its own:
//
//	if err := convert.Validate(input, convert.Hexadecimal); err != nil {
//	    // ErrEmptyInput, *InvalidDigitsError or ErrUnsupportedBase
//	}
//	v, err := convert.Parse(input, convert.Hexadecimal)
//	out := convert.Format(v, convert.Binary)
//
// or in one call:
//
//	out, err := convert.Convert("FF", convert.Hexadecimal, convert.Binary) // "11111111"
//
// Values are unsigned 64-bit integers. Numerals beyond that range fail with
// ErrOverflow instead of losing precision.
//
// Every function in this package is pure and safe for concurrent use.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package convert
