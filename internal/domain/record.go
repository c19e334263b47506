package domain

import "time"

// ConversionRecord is one successful conversion as shown and persisted.
// Only records produced by a successful conversion are ever created.
type ConversionRecord struct {
	// Input is the numeral exactly as typed, case preserved.
	Input string `json:"input"`

	// FromBase is the base Input was written in.
	FromBase Base `json:"fromBase"`

	// Output is the converted numeral, hex digits uppercase.
	Output string `json:"output"`

	// ToBase is the base Output is written in.
	ToBase Base `json:"toBase"`

	// Timestamp is the locale formatted time of day of the conversion.
	Timestamp string `json:"timestamp"`

	// Date is the locale formatted calendar date of the conversion.
	Date string `json:"date"`
}

// NewConversionRecord stamps a converted pair with the time t rendered in loc.
func NewConversionRecord(input string, from Base, output string, to Base, t time.Time, loc Locale) ConversionRecord {
	return ConversionRecord{
		Input:     input,
		FromBase:  from,
		Output:    output,
		ToBase:    to,
		Timestamp: loc.FormatTime(t),
		Date:      loc.FormatDate(t),
	}
}
