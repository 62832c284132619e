package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Default values.
const (
	DefaultTickRate     = 16 * time.Millisecond
	DefaultReleaseDelay = 550 * time.Millisecond
	DefaultLogLevel     = "info"
	DefaultLogFormat    = FormatConsole
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds the runtime settings of the input host.
type Config struct {
	// TickRate is the interval between update boundaries.
	TickRate time.Duration

	// ReleaseDelay is how long a terminal key stays held after its last
	// press before a release is synthesised.
	ReleaseDelay time.Duration

	// LogLevel is a zerolog level name.
	LogLevel string

	// LogFormat is "console" or "json".
	LogFormat string

	// LogFile receives log output. Empty discards logs while the terminal
	// UI owns the screen.
	LogFile string

	// ScriptPath is an optional Lua script run on every ready tick.
	ScriptPath string

	// TracePath is an optional JSON lines file receiving one record per tick.
	TracePath string

	// MetricsAddr is an optional listen address for the Prometheus endpoint.
	MetricsAddr string

	// QuitKeys are chords that request a close, e.g. "ctrl+c", "esc".
	QuitKeys []string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate:     DefaultTickRate,
		ReleaseDelay: DefaultReleaseDelay,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		QuitKeys:     []string{"ctrl+c", "ctrl+q"},
	}
}

// Validate checks every setting and returns the first failure.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return &ValidationError{Field: "tick_rate", Message: "must be positive", Value: c.TickRate}
	}
	if c.TickRate > time.Second {
		return &ValidationError{Field: "tick_rate", Message: "must be at most 1s", Value: c.TickRate}
	}
	if c.ReleaseDelay <= 0 {
		return &ValidationError{Field: "release_delay", Message: "must be positive", Value: c.ReleaseDelay}
	}
	if _, err := c.Level(); err != nil || c.LogLevel == "" {
		return &ValidationError{Field: "log_level", Message: "unknown level", Value: c.LogLevel}
	}
	switch c.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return &ValidationError{Field: "log_format", Message: `must be "console" or "json"`, Value: c.LogFormat}
	}
	// Raw terminal mode swallows SIGINT, so a quit key is the only way out.
	if len(c.QuitKeys) == 0 {
		return &ValidationError{Field: "quit_keys", Message: "at least one key required", Value: c.QuitKeys}
	}
	for _, k := range c.QuitKeys {
		if strings.TrimSpace(k) == "" {
			return &ValidationError{Field: "quit_keys", Message: "empty key", Value: c.QuitKeys}
		}
	}
	return nil
}

// Level returns the parsed zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}
