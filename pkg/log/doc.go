// Package log provides the logging abstraction used across radix.
//
// Components depend on the Logger interface only. A zerolog backed
// implementation and a no-op logger for tests are provided:
//
//	logger := log.New(log.Options{Level: "info", Format: log.FormatAuto})
//	logger.Info("history loaded", log.Int("entries", 3))
//
//	quiet := log.NewNoopLogger()
//
// # Version
//
// Current version: 1.1.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log
