package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (RADIX_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("history-dir", os.Getenv("RADIX_HISTORY_DIR"), &cfg.HistoryDir)
	s.setString("backend", os.Getenv("RADIX_BACKEND"), &cfg.Backend)
	s.setString("locale", os.Getenv("RADIX_LOCALE"), &cfg.Locale)
	s.setString("log-level", os.Getenv("RADIX_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("RADIX_LOG_FORMAT"), &cfg.LogFormat)
	s.setString("metrics-file", os.Getenv("RADIX_METRICS_FILE"), &cfg.MetricsFile)
}

// Load layers the configuration file at path (if it exists) and the
// environment over cfg, then validates it. Explicitly changed flags win.
func Load(cfg *Config, path string, changed map[string]bool) error {
	if path != "" && FileExists(path) {
		fc, err := LoadFileConfig(path)
		if err != nil {
			return err
		}
		ApplyFileConfig(cfg, fc, changed)
	}
	ApplyEnvConfig(cfg, changed)
	return cfg.Validate()
}
