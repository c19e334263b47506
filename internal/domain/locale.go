package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DefaultLocale is the locale used when none is configured.
const DefaultLocale = "en-US"

// Locale holds the layouts used to stamp a ConversionRecord.
type Locale struct {
	Name       string
	TimeLayout string
	DateLayout string
}

var locales = map[string]Locale{
	"en-US": {Name: "en-US", TimeLayout: "3:04:05 PM", DateLayout: "1/2/2006"},
	"en-GB": {Name: "en-GB", TimeLayout: "15:04:05", DateLayout: "02/01/2006"},
	"de-DE": {Name: "de-DE", TimeLayout: "15:04:05", DateLayout: "2.1.2006"},
	"iso":   {Name: "iso", TimeLayout: "15:04:05", DateLayout: "2006-01-02"},
}

// LookupLocale returns the built-in locale with the given name.
// Matching is case-insensitive; an empty name selects DefaultLocale.
func LookupLocale(name string) (Locale, error) {
	if name == "" {
		name = DefaultLocale
	}
	for key, loc := range locales {
		if strings.EqualFold(key, name) {
			return loc, nil
		}
	}
	return Locale{}, fmt.Errorf("%w: unknown locale %q (known: %s)",
		ErrInvalidConfig, name, strings.Join(LocaleNames(), ", "))
}

// LocaleNames returns the names of the built-in locales, sorted.
func LocaleNames() []string {
	names := make([]string, 0, len(locales))
	for name := range locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatTime renders the time of day of t.
func (l Locale) FormatTime(t time.Time) string { return t.Format(l.TimeLayout) }

// FormatDate renders the calendar date of t.
func (l Locale) FormatDate(t time.Time) string { return t.Format(l.DateLayout) }
