// Package logger provides structured logging using zerolog.
//
// Logs go to stderr by default so that command output on stdout stays
// machine-readable.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var globalLogger zerolog.Logger

// Config controls the global logger.
type Config struct {
	Level  string `json:"level"`
	Debug  bool   `json:"debug"`
	Output string `json:"output"` // "stderr" (default), "stdout" or "discard"
	Format string `json:"format"` // "console" (default) or "json"
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	globalLogger = newLogger(os.Stderr, "console").Level(zerolog.WarnLevel)
}

// Init configures the global logger.
func Init(config Config) error {
	var output io.Writer
	switch config.Output {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	case "discard":
		output = io.Discard
	default:
		return fmt.Errorf("unknown log output %q", config.Output)
	}

	level := zerolog.WarnLevel
	if config.Debug {
		level = zerolog.DebugLevel
	} else if config.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(config.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", config.Level, err)
		}
	}

	globalLogger = newLogger(output, config.Format).Level(level)
	return nil
}

// SetOutput redirects the global logger, keeping its level. Used by tests.
func SetOutput(w io.Writer) {
	level := globalLogger.GetLevel()
	globalLogger = newLogger(w, "json").Level(level)
}

// GetLogger returns the global logger.
func GetLogger() zerolog.Logger {
	return globalLogger
}

// WithComponent returns a child logger tagged with a component name.
func WithComponent(component string) zerolog.Logger {
	return globalLogger.With().Str("component", component).Logger()
}

func newLogger(w io.Writer, format string) zerolog.Logger {
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
