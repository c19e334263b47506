package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseBase(t *testing.T) {
	tests := []struct {
		in      string
		want    Base
		wantErr bool
	}{
		{"2", Binary, false},
		{"bin", Binary, false},
		{"Octal", Octal, false},
		{" 10 ", Decimal, false},
		{"HEX", Hexadecimal, false},
		{"16", Hexadecimal, false},
		{"3", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBase(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBase(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedBase) {
				t.Errorf("error %v is not ErrUnsupportedBase", err)
			}
			if got != tt.want {
				t.Errorf("ParseBase(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBase_Name(t *testing.T) {
	if Hexadecimal.Name() != "Hexadecimal" {
		t.Errorf("Name = %q", Hexadecimal.Name())
	}
	if Base(7).Name() != "Base 7" {
		t.Errorf("Name = %q", Base(7).Name())
	}
	if Base(7).Valid() {
		t.Error("base 7 reported valid")
	}
}

func TestNewConversionRecord_Locales(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

	tests := []struct {
		locale   string
		wantTime string
		wantDate string
	}{
		{"en-US", "2:07:09 PM", "3/5/2024"},
		{"en-GB", "14:07:09", "05/03/2024"},
		{"de-DE", "14:07:09", "5.3.2024"},
		{"iso", "14:07:09", "2024-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			loc, err := LookupLocale(tt.locale)
			if err != nil {
				t.Fatalf("LookupLocale: %v", err)
			}
			r := NewConversionRecord("ff", Hexadecimal, "255", Decimal, at, loc)
			if r.Timestamp != tt.wantTime {
				t.Errorf("Timestamp = %q, want %q", r.Timestamp, tt.wantTime)
			}
			if r.Date != tt.wantDate {
				t.Errorf("Date = %q, want %q", r.Date, tt.wantDate)
			}
			if r.Input != "ff" || r.Output != "255" {
				t.Errorf("record = %+v", r)
			}
		})
	}
}

func TestLookupLocale_Unknown(t *testing.T) {
	if _, err := LookupLocale("xx-YY"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
	loc, err := LookupLocale("")
	if err != nil || loc.Name != DefaultLocale {
		t.Errorf("LookupLocale(\"\") = %v, %v", loc, err)
	}
}

func TestErrors(t *testing.T) {
	var err error = &InvalidDigitsError{Base: Octal}
	if err.Error() != "radix: invalid characters for base-8 number" {
		t.Errorf("Error() = %q", err.Error())
	}

	cause := errors.New("disk full")
	err = &StorageError{Op: "save", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("StorageError does not unwrap to cause")
	}
}
