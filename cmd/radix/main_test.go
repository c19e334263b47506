package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/radix/internal/cliconfig"
	"github.com/bft-labs/radix/pkg/radix"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{radix.ErrEmptyInput, "Please enter a number to convert"},
		{&radix.InvalidDigitsError{Base: radix.Octal}, "Invalid characters for base-8 (Octal) number"},
		{radix.ErrParseFailure, "Invalid number format"},
		{&radix.StorageError{Op: "save", Err: errors.New("disk full")}, "Failed to save history: disk full"},
		{&radix.StorageError{Op: "clear", Err: errors.New("busy")}, "Failed to clear history: busy"},
		{errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describe(tt.err))
	}
}

func TestRenderHistory(t *testing.T) {
	var buf bytes.Buffer
	renderHistory(&buf, nil)
	assert.Equal(t, "No conversions yet\n", buf.String())

	buf.Reset()
	renderHistory(&buf, radix.History{
		{Input: "ff", FromBase: radix.Hexadecimal, Output: "11111111", ToBase: radix.Binary, Timestamp: "2:07:09 PM", Date: "3/5/2024"},
		{Input: "1010", FromBase: radix.Binary, Output: "10", ToBase: radix.Decimal, Timestamp: "2:06:00 PM", Date: "3/5/2024"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1  ff     →  11111111"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2  1010   →  10      "), lines[2])
	assert.Contains(t, lines[2], "Binary → Decimal")
}

func TestConvertCommand(t *testing.T) {
	a := &app{cfg: cliconfig.DefaultConfig()}
	a.cfg.HistoryDir = t.TempDir()
	require.NoError(t, a.cfg.Validate())

	s, err := radix.New(a.cfg.SessionConfig())
	require.NoError(t, err)
	a.session = s
	a.session.Load(context.Background())

	cmd := newConvertCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"FF", "--from", "hex", "--to", "2"})
	cmd.SetContext(context.Background())
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "11111111\n", out.String())

	cmd = newConvertCmd(a)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{"9", "--from", "8", "--to", "10"})
	cmd.SetContext(context.Background())
	err = cmd.Execute()
	var digitErr *radix.InvalidDigitsError
	require.ErrorAs(t, err, &digitErr)

	assert.Len(t, a.session.History(), 1)
}
