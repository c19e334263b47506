package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestApplyFileConfig(t *testing.T) {
	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
	}{
		{
			name: "applies all values",
			fileConfig: FileConfig{
				HistoryDir:  "/file/history",
				Backend:     "sqlite",
				Locale:      "de-DE",
				LogLevel:    "debug",
				LogFormat:   "json",
				MetricsFile: "/file/radix.prom",
			},
			changed: map[string]bool{},
			initial: DefaultConfig(),
			expected: Config{
				HistoryDir:  "/file/history",
				Backend:     "sqlite",
				Locale:      "de-DE",
				LogLevel:    "debug",
				LogFormat:   "json",
				MetricsFile: "/file/radix.prom",
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				HistoryDir: "/file/history",
				Locale:     "de-DE",
			},
			changed: map[string]bool{"history-dir": true},
			initial: Config{
				HistoryDir: "/flag/history",
				Locale:     "en-US",
			},
			expected: Config{
				HistoryDir: "/flag/history", // unchanged because flag was set
				Locale:     "de-DE",
			},
		},
		{
			name:       "empty values keep defaults",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    DefaultConfig(),
			expected:   DefaultConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.TrimSpace(`
history_dir = "/srv/radix"
backend = "sqlite"
locale = "iso"
log_level = "info"
log_format = "console"
metrics_file = "/var/lib/node_exporter/radix.prom"
`)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}
	want := FileConfig{
		HistoryDir:  "/srv/radix",
		Backend:     "sqlite",
		Locale:      "iso",
		LogLevel:    "info",
		LogFormat:   "console",
		MetricsFile: "/var/lib/node_exporter/radix.prom",
	}
	if fc != want {
		t.Errorf("FileConfig = %+v, want %+v", fc, want)
	}
}

func TestLoadFileConfig_Errors(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("history_dir = [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	if FileExists(filepath.Join(dir, "nope")) {
		t.Error("FileExists reported a missing file")
	}
	path := filepath.Join(dir, "yes")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists missed an existing file")
	}
}
