package cliconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/bft-labs/radix/internal/domain"
	"github.com/bft-labs/radix/pkg/log"
	"github.com/bft-labs/radix/pkg/radix"
)

// Config holds CLI configuration for radix.
type Config struct {
	HistoryDir string
	Backend    string
	Locale     string

	LogLevel  string
	LogFormat string

	MetricsFile string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		HistoryDir: "", // Derived from the home directory during Validate
		Backend:    radix.BackendFile,
		Locale:     domain.DefaultLocale,
		LogLevel:   "warn",
		LogFormat:  log.FormatAuto,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.HistoryDir == "" {
		c.HistoryDir = radix.DefaultHistoryDir()
	}
	c.HistoryDir = expandHome(c.HistoryDir)
	c.MetricsFile = expandHome(c.MetricsFile)

	c.Backend = strings.ToLower(c.Backend)
	if c.Backend != radix.BackendFile && c.Backend != radix.BackendSQLite {
		return fmt.Errorf("backend must be %q or %q, got %q", radix.BackendFile, radix.BackendSQLite, c.Backend)
	}

	if _, err := domain.LookupLocale(c.Locale); err != nil {
		return err
	}

	switch c.LogFormat {
	case log.FormatAuto, log.FormatConsole, log.FormatJSON:
	default:
		return fmt.Errorf("log format must be auto, console or json, got %q", c.LogFormat)
	}

	return nil
}

// SessionConfig converts the CLI configuration to a radix.Config.
func (c Config) SessionConfig() radix.Config {
	return radix.Config{
		HistoryDir: c.HistoryDir,
		Backend:    c.Backend,
		Locale:     c.Locale,
	}
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return h + p[1:]
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}
