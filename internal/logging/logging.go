// Package logging builds the slog logger used by the command-line tools.
//
// Library packages never log. Only binaries under cmd/ construct a logger,
// and they hand it down explicitly.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// ErrUnknownLevel is returned by ParseLevel.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Config configures New. The zero value logs Info and above to stderr,
// choosing the format from whether stderr is a terminal.
type Config struct {
	Level slog.Level
	// Output defaults to os.Stderr.
	Output io.Writer
	// JSON forces JSON output. When false, JSON is still used if Output is
	// not a terminal.
	JSON bool
	// Service is attached to every record when set.
	Service string
}

// ParseLevel accepts debug, info, warn/warning and error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.Wrapf(ErrUnknownLevel, "%q", s)
}

// New creates a logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var h slog.Handler
	if cfg.JSON || !isTerminal(out) {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(h)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}
	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
