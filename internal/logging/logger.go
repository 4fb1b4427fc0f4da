package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return newWithOutput(cfg, os.Stderr)
}

// NewWithFile creates a logger that writes to both stderr and a rotated log
// file in dir. Used for per-run logs kept alongside the run database.
func NewWithFile(cfg Config, dir string) (zerolog.Logger, io.Closer, error) {
	rotator, err := NewLogRotator(dir, 10, 5, 14, true)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	logger := newWithOutput(cfg, zerolog.MultiLevelWriter(os.Stderr, rotator))
	return logger, rotator, nil
}

func newWithOutput(cfg Config, out io.Writer) zerolog.Logger {
	var output = out

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	case "json":
		// JSON is the default zerolog format
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromEnv creates a logger based on environment variables
// DEMOREEL_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DEMOREEL_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ConfigFromEnv())
}

// ConfigFromEnv builds a logging config from environment variables, falling
// back to defaults for anything unset or unrecognized.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if level := os.Getenv("DEMOREEL_LOG_LEVEL"); level != "" {
		switch level {
		case "trace":
			cfg.Level = zerolog.TraceLevel
		case "debug":
			cfg.Level = zerolog.DebugLevel
		case "info":
			cfg.Level = zerolog.InfoLevel
		case "warn":
			cfg.Level = zerolog.WarnLevel
		case "error":
			cfg.Level = zerolog.ErrorLevel
		}
	}

	if format := os.Getenv("DEMOREEL_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return cfg
}
