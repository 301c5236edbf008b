// Package logging provides structured logging using Go's standard library log/slog.
// It outputs JSON by default, or key=value text for terminal use, and its
// loggers are handed out through the di package for Fx-managed programs.
package logging
