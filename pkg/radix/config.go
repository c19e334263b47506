package radix

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/radix/internal/domain"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds the configuration of a Session.
type Config struct {
	// HistoryDir is the directory holding the durable history record.
	// Default: $HOME/.radix
	HistoryDir string

	// Backend is BackendFile or BackendSQLite. Default: BackendFile.
	Backend string

	// Locale names the layouts used to stamp records. Default: en-US.
	Locale string
}

// DefaultHistoryDir returns $HOME/.radix, or ".radix" when the home
// directory is unknown.
func DefaultHistoryDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".radix")
	}
	return ".radix"
}

// SetDefaults fills empty fields with default values.
func (c *Config) SetDefaults() {
	if c.HistoryDir == "" {
		c.HistoryDir = DefaultHistoryDir()
	}
	if c.Backend == "" {
		c.Backend = BackendFile
	}
	if c.Locale == "" {
		c.Locale = domain.DefaultLocale
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	if _, err := domain.LookupLocale(c.Locale); err != nil {
		return err
	}
	return nil
}
