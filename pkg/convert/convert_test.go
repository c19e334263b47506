package convert_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/radix/pkg/convert"
)

var allBases = []convert.Base{convert.Binary, convert.Octal, convert.Decimal, convert.Hexadecimal}

func TestConvert_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		from  convert.Base
		to    convert.Base
		want  string
	}{
		{"binary to decimal", "1010", convert.Binary, convert.Decimal, "10"},
		{"hex to binary", "FF", convert.Hexadecimal, convert.Binary, "11111111"},
		{"lowercase hex", "ff", convert.Hexadecimal, convert.Decimal, "255"},
		{"decimal to hex is uppercase", "48879", convert.Decimal, convert.Hexadecimal, "BEEF"},
		{"octal to decimal", "777", convert.Octal, convert.Decimal, "511"},
		{"zero", "0", convert.Decimal, convert.Binary, "0"},
		{"leading zeros dropped", "000101", convert.Binary, convert.Binary, "101"},
		{"max uint64", "FFFFFFFFFFFFFFFF", convert.Hexadecimal, convert.Decimal, "18446744073709551615"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convert.Convert(tt.input, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		from      convert.Base
		to        convert.Base
		wantErr   error
		wantDigit convert.Base
	}{
		{name: "empty", input: "", from: convert.Decimal, to: convert.Binary, wantErr: convert.ErrEmptyInput},
		{name: "whitespace", input: " \t ", from: convert.Decimal, to: convert.Binary, wantErr: convert.ErrEmptyInput},
		{name: "two in binary", input: "2", from: convert.Binary, to: convert.Decimal, wantDigit: convert.Binary},
		{name: "nine in octal", input: "9", from: convert.Octal, to: convert.Decimal, wantDigit: convert.Octal},
		{name: "hex letter in decimal", input: "1A", from: convert.Decimal, to: convert.Binary, wantDigit: convert.Decimal},
		{name: "g in hex", input: "FG", from: convert.Hexadecimal, to: convert.Binary, wantDigit: convert.Hexadecimal},
		{name: "surrounding spaces", input: " 10 ", from: convert.Decimal, to: convert.Binary, wantDigit: convert.Decimal},
		{name: "negative", input: "-5", from: convert.Decimal, to: convert.Binary, wantDigit: convert.Decimal},
		{name: "prefix", input: "0x1F", from: convert.Hexadecimal, to: convert.Binary, wantDigit: convert.Hexadecimal},
		{name: "unsupported from", input: "12", from: 3, to: convert.Binary, wantErr: convert.ErrUnsupportedBase},
		{name: "unsupported to", input: "12", from: convert.Decimal, to: 36, wantErr: convert.ErrUnsupportedBase},
		{name: "overflow", input: "18446744073709551616", from: convert.Decimal, to: convert.Hexadecimal, wantErr: convert.ErrOverflow},
		{name: "long binary overflow", input: "1" + strings.Repeat("0", 64), from: convert.Binary, to: convert.Decimal, wantErr: convert.ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := convert.Convert(tt.input, tt.from, tt.to)
			require.Error(t, err)
			assert.Empty(t, got)

			if tt.wantDigit != 0 {
				var digitErr *convert.InvalidDigitsError
				require.True(t, errors.As(err, &digitErr), "error %v is not InvalidDigitsError", err)
				assert.Equal(t, tt.wantDigit, digitErr.Base)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_EmptyBeforeBase(t *testing.T) {
	err := convert.Validate("", 7)
	assert.ErrorIs(t, err, convert.ErrEmptyInput)
}

func TestParse_BackstopFailure(t *testing.T) {
	_, err := convert.Parse("xyz", convert.Decimal)
	assert.ErrorIs(t, err, convert.ErrParseFailure)
}

func TestConvert_SameBaseIsIdentity(t *testing.T) {
	samples := map[convert.Base][]string{
		convert.Binary:      {"0", "1", "101101", "00011"},
		convert.Octal:       {"7", "1234567", "0070"},
		convert.Decimal:     {"0", "42", "9876543210", "007"},
		convert.Hexadecimal: {"ff", "DeadBeef", "0A"},
	}

	for base, inputs := range samples {
		for _, in := range inputs {
			got, err := convert.Convert(in, base, base)
			require.NoError(t, err)

			want := strings.ToUpper(strings.TrimLeft(in, "0"))
			if want == "" {
				want = "0"
			}
			assert.Equal(t, want, got, "base %d input %q", base, in)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 7, 8, 10, 15, 16, 255, 256, 1 << 31, 1<<53 - 1, math.MaxUint64}

	for _, v := range values {
		for _, b1 := range allBases {
			for _, b2 := range allBases {
				s := convert.Format(v, b1)

				mid, err := convert.Convert(s, b1, b2)
				require.NoError(t, err)
				back, err := convert.Convert(mid, b2, b1)
				require.NoError(t, err)

				got, err := convert.Parse(back, b1)
				require.NoError(t, err)
				assert.Equal(t, v, got, "value %d via base %d -> %d", v, b1, b2)
			}
		}
	}
}
