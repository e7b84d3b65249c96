// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

// Package logger provides logging functionality for the nova tool.
//
// It wraps the standard library's log/slog package to provide consistent
// logging across the application. Verbosity is driven by the program-level
// flags: --debug selects the debug level (and implies verbose), --verbose
// selects info, and the default shows warnings and errors only.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// InitLogger initializes and returns a new slog.Logger for the given
// verbosity flags and sets it as the default global logger. Log output goes
// to stderr so stdout stays reserved for command output.
func InitLogger(verbose, debug bool) *slog.Logger {
	return InitLoggerTo(os.Stderr, verbose, debug)
}

// InitLoggerTo is InitLogger writing to the given destination. Tests use it
// to capture log output.
func InitLoggerTo(w io.Writer, verbose, debug bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case debug:
		level = slog.LevelDebug
	case verbose:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
