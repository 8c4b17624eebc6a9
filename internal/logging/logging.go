// Package logging configures the application logger. The TUI owns
// stdout, so all diagnostics go to a log file next to the database.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Setup opens (or creates) the log file at path, installs a text slog
// handler writing to it as the default logger, and returns the logger
// together with a close function for the file.
func Setup(path string) (*slog.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	return logger, f.Close, nil
}
