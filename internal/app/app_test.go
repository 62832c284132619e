package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inputstate/internal/config"
	"github.com/dshills/inputstate/internal/trace"
)

// syncBuffer is a bytes.Buffer safe for the logger's concurrent writers.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.TickRate = 5 * time.Millisecond
	cfg.LogFormat = config.FormatJSON
	cfg.LogLevel = "debug"
	return cfg
}

func newTestApp(t *testing.T, cfg config.Config, logs io.Writer) (*Application, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	app, err := New(cfg, Options{Screen: screen, LogOutput: logs, Version: "test"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app, screen
}

// post retries until the simulation screen has been initialised by Run.
func post(t *testing.T, screen tcell.SimulationScreen, ev tcell.Event) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for screen.PostEvent(ev) != nil {
		if time.Now().After(deadline) {
			t.Fatal("screen never accepted events")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
	}{
		{"zero tick", func(c *config.Config) { c.TickRate = 0 }},
		{"unsupported quit key", func(c *config.Config) { c.QuitKeys = []string{"ctrl+shift+f1"} }},
		{"no quit keys", func(c *config.Config) { c.QuitKeys = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.modify(&cfg)
			app, err := New(cfg, Options{Screen: tcell.NewSimulationScreen("UTF-8")})
			if app != nil {
				t.Error("New() returned an application on error")
			}
			var opErr *OperationError
			if !errors.As(err, &opErr) || opErr.Op != "validate" {
				t.Errorf("New() error = %v, want validate OperationError", err)
			}
		})
	}
}

func TestNew_MissingScriptFails(t *testing.T) {
	cfg := testConfig()
	cfg.ScriptPath = filepath.Join(t.TempDir(), "missing.lua")
	_, err := New(cfg, Options{Screen: tcell.NewSimulationScreen("UTF-8")})

	var compErr *ComponentError
	if !errors.As(err, &compErr) || compErr.Component != "script" {
		t.Fatalf("New() error = %v, want script ComponentError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("New() error = %v, want os.ErrNotExist in chain", err)
	}
}

func TestApplication_RunUntilQuitKey(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "tick.lua")
	src := `
presses = 0
function on_tick()
  if input.key_pressed("a") then presses = presses + 1 end
end`
	if err := os.WriteFile(scriptPath, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig()
	cfg.ScriptPath = scriptPath
	cfg.TracePath = filepath.Join(dir, "trace.jsonl")

	logs := &syncBuffer{}
	app, screen := newTestApp(t, cfg, logs)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	post(t, screen, tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	// Let a tick observe the press before quitting.
	time.Sleep(50 * time.Millisecond)
	post(t, screen, tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after quit key")
	}

	if got := app.script.L.GetGlobal("presses"); got != lua.LNumber(1) {
		t.Errorf("script presses = %v, want 1", got)
	}
	if err := app.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	f, err := os.Open(cfg.TracePath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	ticks, err := trace.ReadTicks(f)
	if err != nil {
		t.Fatalf("ReadTicks() error = %v", err)
	}

	var sawPress, sawClose bool
	for _, tk := range ticks {
		for _, a := range tk.Keys {
			if a.Kind == "pressed" && a.Key == "a" {
				sawPress = true
			}
		}
		sawClose = sawClose || tk.CloseRequested
	}
	if !sawPress {
		t.Error("trace has no press of a")
	}
	if !sawClose {
		t.Error("trace has no close request")
	}

	if !strings.Contains(logs.String(), app.Session()) {
		t.Error("logs do not carry the session id")
	}
	if app.Metrics().Snapshot().TraceRecords != uint64(len(ticks)) {
		t.Errorf("TraceRecords = %d, want %d", app.Metrics().Snapshot().TraceRecords, len(ticks))
	}
}

func TestApplication_RunStopsOnContext(t *testing.T) {
	app, _ := newTestApp(t, testConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v, want nil on cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
	if app.Helper().Ticks() == 0 {
		t.Error("no ticks were processed")
	}
}

func TestApplication_TickAfterClose(t *testing.T) {
	app, _ := newTestApp(t, testConfig(), nil)
	if err := app.Close(); err != nil {
		t.Fatal(err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := app.Tick(time.Now()); !errors.Is(err, ErrClosed) {
		t.Errorf("Tick() = %v, want ErrClosed", err)
	}
}

func TestApplication_MetricsEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.MetricsAddr = "127.0.0.1:0"
	app, _ := newTestApp(t, cfg, nil)

	if err := app.source.Start(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := app.Tick(time.Now()); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}

	resp, err := http.Get("http://" + app.MetricsAddr() + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics error = %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"inputstate_ticks_total 3",
		"inputstate_uptime_seconds",
		"inputstate_tick_handling_seconds_total",
		"go_goroutines",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestApplication_MetricsAddrDisabled(t *testing.T) {
	app, _ := newTestApp(t, testConfig(), nil)
	if got := app.MetricsAddr(); got != "" {
		t.Errorf("MetricsAddr() = %q, want empty", got)
	}
}
