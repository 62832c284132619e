// Package main is the entry point for inputstate, a terminal host that
// reduces keyboard and mouse events into per-tick input state.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/inputstate/internal/app"
	"github.com/dshills/inputstate/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errHelp is returned by parseFlags after -help or -version was handled.
var errHelp = errors.New("help requested")

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := parseFlags(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, errHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	application, err := app.New(cfg, app.Options{Version: version})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := application.Run(ctx)
	if err := application.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return 1
	}
	return 0
}

// overrides holds flag values that replace loaded config fields when set.
type overrides struct {
	logLevel    string
	logFile     string
	script      string
	trace       string
	metricsAddr string
	tickRate    time.Duration
}

func (o overrides) apply(cfg *config.Config) {
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	if o.script != "" {
		cfg.ScriptPath = o.script
	}
	if o.trace != "" {
		cfg.TracePath = o.trace
	}
	if o.metricsAddr != "" {
		cfg.MetricsAddr = o.metricsAddr
	}
	if o.tickRate != 0 {
		cfg.TickRate = o.tickRate
	}
}

// parseFlags loads the config file named by -config, then applies the
// remaining flags on top of it.
func parseFlags(args []string, stdout, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("inputstate", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath  string
		o           overrides
		showVersion bool
	)
	fs.StringVar(&configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&o.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&o.logFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&o.script, "script", "", "Lua script with an on_tick function")
	fs.StringVar(&o.trace, "trace", "", "Write one JSON line per tick to this file")
	fs.StringVar(&o.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	fs.DurationVar(&o.tickRate, "tick", 0, "Tick interval (e.g. 16ms)")
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "inputstate - per-tick keyboard and mouse state for the terminal\n\n")
		fmt.Fprintf(stderr, "Usage: inputstate [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment variables prefixed with %s override the config file.\n", config.EnvPrefix)
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  inputstate                           Show live input state\n")
		fmt.Fprintf(stderr, "  inputstate -script keys.lua          Run a script every tick\n")
		fmt.Fprintf(stderr, "  inputstate -trace ticks.jsonl        Record every tick\n")
		fmt.Fprintf(stderr, "  inputstate -metrics-addr :9090       Expose metrics\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config.Config{}, errHelp
		}
		return config.Config{}, err
	}

	if showVersion {
		fmt.Fprintf(stdout, "inputstate %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return config.Config{}, errHelp
	}

	if fs.NArg() > 0 {
		return config.Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	o.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
