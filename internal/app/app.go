// Package app wires the terminal source, the input reducer and the tick
// consumers (script, trace, status line, metrics) into a running host.
package app

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/inputstate/internal/backend/terminal"
	"github.com/dshills/inputstate/internal/config"
	"github.com/dshills/inputstate/internal/input"
	"github.com/dshills/inputstate/internal/script"
	"github.com/dshills/inputstate/internal/trace"
)

// shutdownTimeout bounds the metrics server shutdown.
const shutdownTimeout = 2 * time.Second

// Application owns every component of a running host.
type Application struct {
	mu sync.Mutex

	cfg     config.Config
	opts    Options
	session string
	logger  zerolog.Logger
	logFile io.Closer

	helper       *input.Helper
	inputMetrics *input.Metrics
	metrics      *Metrics
	source       *terminal.Source
	script       *script.Runner
	trace        *trace.Recorder
	metricsSrv   *metricsServer

	status statusLine

	running atomic.Bool
	closed  bool
}

// Options configures the application beyond the loaded config.
type Options struct {
	// Screen replaces the real terminal, e.g. with a simulation screen.
	Screen tcell.Screen

	// LogOutput overrides config.LogFile.
	LogOutput io.Writer

	// Version is shown in the status line.
	Version string
}

// New builds every component described by cfg. Failures close whatever
// was already built.
func New(cfg config.Config, opts Options) (app *Application, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewOperationError("validate", "config", err)
	}
	for _, k := range cfg.QuitKeys {
		if !terminal.ValidQuitKey(k) {
			return nil, NewOperationError("validate", "config", errors.New("unsupported quit key")).WithContext(k)
		}
	}

	app = &Application{
		cfg:          cfg,
		opts:         opts,
		session:      NewSessionID(),
		logger:       zerolog.Nop(),
		inputMetrics: input.NewMetrics(),
		metrics:      NewMetrics(),
	}
	defer func() {
		if err != nil {
			_ = app.Close()
			app = nil
		}
	}()

	if err := app.initLogger(); err != nil {
		return app, err
	}
	app.helper = input.NewHelper(input.WithMetrics(app.inputMetrics))

	if err := app.initSource(); err != nil {
		return app, err
	}
	if err := app.initScript(); err != nil {
		return app, err
	}
	if err := app.initTrace(); err != nil {
		return app, err
	}
	if err := app.initMetrics(); err != nil {
		return app, err
	}

	app.status = newStatusLine(opts.Version, app.session, cfg.QuitKeys)
	app.logger.Info().
		Dur("tick_rate", cfg.TickRate).
		Dur("release_delay", cfg.ReleaseDelay).
		Msg("application initialized")
	return app, nil
}

func (app *Application) initLogger() error {
	out := app.opts.LogOutput
	if out == nil {
		f, err := openLogOutput(app.cfg.LogFile)
		if err != nil {
			return NewOperationError("open", app.cfg.LogFile, err)
		}
		if f != nil {
			out = f
			app.logFile = f
		}
	}

	level, _ := app.cfg.Level()
	app.logger = NewLogger(LoggerConfig{
		Level:     level,
		Format:    app.cfg.LogFormat,
		Output:    out,
		SessionID: app.session,
	})
	return nil
}

func (app *Application) initSource() error {
	screen := app.opts.Screen
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return &ComponentError{Component: "source", Action: "create screen", Err: err}
		}
		screen = s
	}

	translator := terminal.NewTranslator(
		terminal.WithReleaseDelay(app.cfg.ReleaseDelay),
		terminal.WithQuitKeys(app.cfg.QuitKeys...),
	)
	app.source = terminal.NewSource(screen,
		terminal.WithTranslator(translator),
		terminal.WithSourceMetrics(app.inputMetrics),
	)
	return nil
}

func (app *Application) initScript() error {
	if app.cfg.ScriptPath == "" {
		return nil
	}
	r, err := script.Open(app.cfg.ScriptPath,
		script.WithLogger(componentLogger(app.logger, "script")),
	)
	if err != nil {
		return &ComponentError{Component: "script", Action: "load", Err: err}
	}
	app.script = r
	return nil
}

func (app *Application) initTrace() error {
	if app.cfg.TracePath == "" {
		return nil
	}
	rec, err := trace.Create(app.cfg.TracePath)
	if err != nil {
		return &ComponentError{Component: "trace", Action: "create", Err: err}
	}
	app.trace = rec
	return nil
}

func (app *Application) initMetrics() error {
	if app.cfg.MetricsAddr == "" {
		return nil
	}
	reg, err := newRegistry(app.inputMetrics, app.metrics)
	if err != nil {
		return &ComponentError{Component: "metrics", Action: "register", Err: err}
	}
	srv, err := startMetricsServer(app.cfg.MetricsAddr, reg, componentLogger(app.logger, "metrics"))
	if err != nil {
		return &ComponentError{Component: "metrics", Action: "serve", Err: err}
	}
	app.metricsSrv = srv
	return nil
}

// Run starts the terminal and handles one tick every TickRate until the
// user quits, the terminal goes away or ctx is done. A normal quit returns
// nil.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.source.Start(); err != nil {
		return &ComponentError{Component: "source", Action: "start", Err: err}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if app.script != nil {
		go func() {
			if err := app.script.Watch(ctx); err != nil {
				app.logger.Warn().Err(err).Msg("script watch stopped")
			}
		}()
	}

	ticker := time.NewTicker(app.cfg.TickRate)
	defer ticker.Stop()

	app.logger.Info().Msg("running")
	for {
		select {
		case <-ctx.Done():
			app.logger.Info().Msg("context done")
			return nil

		case now := <-ticker.C:
			if err := app.Tick(now); err != nil {
				if errors.Is(err, ErrQuit) {
					app.logger.Info().Uint64("ticks", app.helper.Ticks()).Msg("quit")
					return nil
				}
				return err
			}
		}
	}
}

// Tick drains the source and hands every completed tick to the consumers.
// It returns ErrQuit once a close request or destroy has been observed.
func (app *Application) Tick(now time.Time) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.closed {
		return ErrClosed
	}

	start := time.Now()
	defer func() { app.metrics.RecordTick(time.Since(start)) }()

	var quit bool
	for _, ev := range app.source.Drain(now) {
		if !app.helper.Update(ev) {
			continue
		}
		state := app.helper.State()
		if err := app.handleReady(state); err != nil {
			return err
		}
		if state.CloseRequested() || state.Destroyed() {
			quit = true
		}
	}
	if quit {
		return ErrQuit
	}
	return nil
}

// handleReady runs the consumers of one ready tick.
func (app *Application) handleReady(state input.Reader) error {
	tick := app.helper.Ticks()

	if app.script != nil {
		start := time.Now()
		err := app.script.Tick(state)
		app.metrics.RecordScript(time.Since(start), err)
		if err != nil {
			app.logger.Warn().Err(err).Uint64("tick", tick).Msg("script tick failed")
		}
	}

	if app.trace != nil {
		if err := app.trace.Record(tick, state); err != nil {
			return NewOperationError("record", app.cfg.TracePath, err)
		}
		app.metrics.RecordTrace()
	}

	start := time.Now()
	app.status.update(state)
	terminal.DrawLines(app.source.Screen(), app.status.lines(tick, state))
	app.metrics.RecordRender(time.Since(start))

	if app.logger.GetLevel() <= zerolog.TraceLevel {
		for _, a := range state.KeyActions() {
			app.logger.Trace().Str("kind", a.Kind.String()).Stringer("key", a.Key).Msg("key action")
		}
	}
	return nil
}

// Helper returns the reducer driven by the application.
func (app *Application) Helper() *input.Helper {
	return app.helper
}

// Session returns the session id attached to every log entry.
func (app *Application) Session() string {
	return app.session
}

// MetricsAddr returns the bound metrics address, or "" when disabled.
func (app *Application) MetricsAddr() string {
	if app.metricsSrv == nil {
		return ""
	}
	return app.metricsSrv.Addr()
}

// Metrics returns the host loop metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// InputMetrics returns the event counters.
func (app *Application) InputMetrics() *input.Metrics {
	return app.inputMetrics
}

// Close stops every component. It is safe to call more than once.
func (app *Application) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.closed {
		return nil
	}
	app.closed = true

	var errs ErrorList
	if app.source != nil {
		app.source.Close()
	}
	if app.script != nil {
		app.script.Close()
	}
	if app.trace != nil {
		errs.Add(app.trace.Close())
	}
	if app.metricsSrv != nil {
		errs.Add(app.metricsSrv.shutdown(shutdownTimeout))
	}

	app.logger.Info().Msg("closed")
	if app.logFile != nil {
		errs.Add(app.logFile.Close())
	}
	return errs.AsError()
}
