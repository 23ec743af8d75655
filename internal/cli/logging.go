package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/riordanpawley/toastdemo/internal/config"
)

// newLogger builds a text slog logger. Verbose forces debug level.
func newLogger(w io.Writer, level slog.Level, verbose bool) *slog.Logger {
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// fileLogger opens the configured log file for appending. The TUI owns
// stdout, so this is where its logs go.
func fileLogger(cfg config.LogConfig, verbose bool) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(f, level, verbose), func() { _ = f.Close() }, nil
}
