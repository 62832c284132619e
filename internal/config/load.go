package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "INPUTSTATE_"

// FileSystem is the file access the loader needs.
// fstest.MapFS satisfies it in tests.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

type osFS struct{}

func (osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// fileConfig mirrors the on-disk layout. Empty fields keep the lower layer.
type fileConfig struct {
	TickRate     string   `toml:"tick_rate" yaml:"tick_rate"`
	ReleaseDelay string   `toml:"release_delay" yaml:"release_delay"`
	LogLevel     string   `toml:"log_level" yaml:"log_level"`
	LogFormat    string   `toml:"log_format" yaml:"log_format"`
	LogFile      string   `toml:"log_file" yaml:"log_file"`
	Script       string   `toml:"script" yaml:"script"`
	Trace        string   `toml:"trace" yaml:"trace"`
	MetricsAddr  string   `toml:"metrics_addr" yaml:"metrics_addr"`
	QuitKeys     []string `toml:"quit_keys" yaml:"quit_keys"`
}

// Loader builds a Config from defaults, a config file and the environment,
// in increasing priority.
type Loader struct {
	fs     FileSystem
	lookup func(string) (string, bool)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFileSystem sets the file system used to read config files.
func WithFileSystem(fsys FileSystem) LoaderOption {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// WithLookupEnv sets the environment lookup function.
func WithLookupEnv(lookup func(string) (string, bool)) LoaderOption {
	return func(l *Loader) {
		l.lookup = lookup
	}
}

// NewLoader creates a loader reading the OS file system and environment.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:     osFS{},
		lookup: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load is shorthand for NewLoader().Load(path).
func Load(path string) (Config, error) {
	return NewLoader().Load(path)
}

// Load reads path (if non-empty and present), applies environment
// overrides and validates the result. A missing file is not an error.
func (l *Loader) Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		fc, err := l.readFile(path)
		if err != nil {
			return Config{}, err
		}
		if fc != nil {
			if err := fc.apply(&cfg); err != nil {
				return Config{}, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if err := l.applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (l *Loader) readFile(path string) (*fileConfig, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return parseTOML(path, data)
	case ".yaml", ".yml":
		return parseYAML(path, data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func parseTOML(source string, data []byte) (*fileConfig, error) {
	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return &fc, nil
}

func parseYAML(source string, data []byte) (*fileConfig, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return &fc, nil
}

func (fc *fileConfig) apply(cfg *Config) error {
	if fc.TickRate != "" {
		d, err := parseDuration("tick_rate", fc.TickRate)
		if err != nil {
			return err
		}
		cfg.TickRate = d
	}
	if fc.ReleaseDelay != "" {
		d, err := parseDuration("release_delay", fc.ReleaseDelay)
		if err != nil {
			return err
		}
		cfg.ReleaseDelay = d
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	if fc.Script != "" {
		cfg.ScriptPath = fc.Script
	}
	if fc.Trace != "" {
		cfg.TracePath = fc.Trace
	}
	if fc.MetricsAddr != "" {
		cfg.MetricsAddr = fc.MetricsAddr
	}
	if fc.QuitKeys != nil {
		cfg.QuitKeys = fc.QuitKeys
	}
	return nil
}

// applyEnv applies INPUTSTATE_* variables. Empty values are treated as set.
func (l *Loader) applyEnv(cfg *Config) error {
	if v, ok := l.lookup(EnvPrefix + "TICK_RATE"); ok {
		d, err := parseDuration(EnvPrefix+"TICK_RATE", v)
		if err != nil {
			return err
		}
		cfg.TickRate = d
	}
	if v, ok := l.lookup(EnvPrefix + "RELEASE_DELAY"); ok {
		d, err := parseDuration(EnvPrefix+"RELEASE_DELAY", v)
		if err != nil {
			return err
		}
		cfg.ReleaseDelay = d
	}
	if v, ok := l.lookup(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := l.lookup(EnvPrefix + "LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := l.lookup(EnvPrefix + "LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := l.lookup(EnvPrefix + "SCRIPT"); ok {
		cfg.ScriptPath = v
	}
	if v, ok := l.lookup(EnvPrefix + "TRACE"); ok {
		cfg.TracePath = v
	}
	if v, ok := l.lookup(EnvPrefix + "METRICS_ADDR"); ok {
		cfg.MetricsAddr = v
	}
	if v, ok := l.lookup(EnvPrefix + "QUIT_KEYS"); ok {
		cfg.QuitKeys = splitList(v)
	}
	return nil
}

func parseDuration(field, s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "not a duration", Value: s}
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
