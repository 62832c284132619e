package script

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dshills/inputstate/internal/input"
	"github.com/rs/zerolog"
	lua "github.com/yuin/gopher-lua"
)

// DefaultTickTimeout bounds a single on_tick call.
const DefaultTickTimeout = 100 * time.Millisecond

// TickFunction is the global the host calls once per ready tick.
const TickFunction = "on_tick"

// Runner owns a sandboxed Lua state running a per-tick script.
//
// gopher-lua states are not goroutine-safe; Runner serialises Tick,
// Reload and Close with a mutex.
type Runner struct {
	mu sync.Mutex

	L      *lua.LState
	path   string
	source string

	logger   zerolog.Logger
	timeout  time.Duration
	onReload func(error)

	current input.Reader
	ticks   uint64
	closed  bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger receiving print output and reload results.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithTickTimeout bounds each on_tick call.
func WithTickTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithReloadHook is called after every reload triggered by Watch.
func WithReloadHook(fn func(error)) Option {
	return func(r *Runner) {
		r.onReload = fn
	}
}

func newRunner(opts []Option) *Runner {
	r := &Runner{
		logger:  zerolog.Nop(),
		timeout: DefaultTickTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open loads the script at path.
func Open(path string, opts ...Option) (*Runner, error) {
	r := newRunner(opts)
	r.path = path

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Op: "load", Err: err}
	}
	L, err := r.compile(path, src)
	if err != nil {
		return nil, err
	}
	r.L = L
	return r, nil
}

// FromString loads a script from source. The runner cannot be reloaded.
func FromString(name, src string, opts ...Option) (*Runner, error) {
	r := newRunner(opts)
	r.source = name

	L, err := r.compile(name, []byte(src))
	if err != nil {
		return nil, err
	}
	r.L = L
	return r, nil
}

// compile creates a fresh state, runs the chunk and checks for on_tick.
func (r *Runner) compile(name string, src []byte) (*lua.LState, error) {
	L := newSandboxedState(r.logger)
	mod := &inputModule{
		current: func() input.Reader { return r.current },
		ticks:   func() uint64 { return r.ticks },
	}
	mod.install(L)

	fn, err := L.Load(bytes.NewReader(src), name)
	if err != nil {
		L.Close()
		return nil, &Error{Path: name, Op: "load", Err: err}
	}
	L.Push(fn)
	if err := L.PCall(0, 0, nil); err != nil {
		L.Close()
		return nil, &Error{Path: name, Op: "load", Err: err}
	}

	if L.GetGlobal(TickFunction).Type() != lua.LTFunction {
		L.Close()
		return nil, &Error{Path: name, Op: "load", Err: ErrNoTickFunction}
	}
	return L, nil
}

// Tick calls on_tick with state as the input table's backing state.
// Lua errors, including timeouts, are returned and never panic.
func (r *Runner) Tick(state input.Reader) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRunnerClosed
	}

	r.ticks++
	r.current = state
	defer func() { r.current = nil }()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	defer func() {
		if rec := recover(); rec != nil {
			err = &Error{Path: r.name(), Op: "tick", Err: fmt.Errorf("lua panic: %v", rec)}
		}
	}()

	top := r.L.GetTop()
	r.L.Push(r.L.GetGlobal(TickFunction))
	if err := r.L.PCall(0, 0, nil); err != nil {
		r.L.SetTop(top)
		return &Error{Path: r.name(), Op: "tick", Err: err}
	}
	return nil
}

// Reload re-reads the script file into a fresh state. On failure the
// previous state keeps running.
func (r *Runner) Reload() error {
	if r.path == "" {
		return ErrNoPath
	}

	src, err := os.ReadFile(r.path)
	if err != nil {
		return &Error{Path: r.path, Op: "load", Err: err}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRunnerClosed
	}

	L, err := r.compile(r.path, src)
	if err != nil {
		return err
	}
	r.L.Close()
	r.L = L
	return nil
}

// Ticks returns the number of Tick calls.
func (r *Runner) Ticks() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticks
}

// Path returns the script file, or "" for string scripts.
func (r *Runner) Path() string {
	return r.path
}

// Close releases the Lua state. It is safe to call more than once.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}

func (r *Runner) name() string {
	if r.path != "" {
		return r.path
	}
	return r.source
}
