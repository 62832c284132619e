package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/inputstate/internal/config"
)

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level zerolog.Level
	// Format is config.FormatConsole or config.FormatJSON.
	Format string
	// Output is where logs are written. Nil discards logs.
	Output io.Writer
	// SessionID tags every entry.
	SessionID string
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// NewLogger creates a zerolog logger with the session id attached.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	if cfg.Output == nil {
		return zerolog.Nop()
	}

	out := cfg.Output
	if cfg.Format == config.FormatConsole {
		out = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: time.TimeOnly,
			NoColor:    true,
		}
	}

	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Str("session", cfg.SessionID).
		Logger()
}

// openLogOutput opens the configured log file for appending. An empty path
// returns a nil writer.
func openLogOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

// componentLogger returns a child logger tagged with component.
func componentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
