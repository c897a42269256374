// Package logger provides a structured logging interface for the UniProtKB fetcher.
//
// It wraps the zerolog library behind a small Logger interface with support for
// multiple log levels, structured fields, pretty console output, and an
// optional log file. A global instance is available for convenience:
//
//	cfg := &config.LoggingConfig{Level: "info"}
//	if err := logger.Initialize(cfg); err != nil { ... }
//
//	logger.Info("fetch started")
//	logger.WithField("taxid", 816).Info("query built")
//
// Component code usually takes a Logger value instead of using the global.
package logger
