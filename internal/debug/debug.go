// Package debug translates the DEBUG environment variable into logger
// configuration. The value is parsed where it is needed and passed on
// explicitly; there is no cached process-wide level.
package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
)

// Config holds the debug verbosity for a run.
type Config struct {
	// Level is the numeric verbosity: 0 is quiet, higher values enable
	// increasingly chatty debug output.
	Level int
}

// FromEnv reads the DEBUG environment variable. Unset means level 0.
// Malformed or negative values also fall back to 0, with an error describing
// the rejected input so the caller can warn about it.
func FromEnv() (Config, error) {
	s, ok := os.LookupEnv("DEBUG")
	if !ok || s == "" {
		return Config{}, nil
	}

	level, err := strconv.Atoi(s)
	if err != nil {
		return Config{}, fmt.Errorf("invalid value for DEBUG=%q; defaulting to 0", s)
	}
	if level < 0 {
		return Config{}, fmt.Errorf("invalid range for DEBUG=%d; defaulting to 0", level)
	}
	return Config{Level: level}, nil
}

// SlogLevel maps the numeric verbosity onto slog levels: 0 logs info and
// above, anything higher enables debug records.
func (c Config) SlogLevel() slog.Level {
	if c.Level > 0 {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewLogger builds a text-handler logger honoring the config's level.
func NewLogger(w io.Writer, c Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: c.SlogLevel(),
	}))
}
