package script

import (
	"errors"
	"fmt"
)

// Script errors.
var (
	// ErrRunnerClosed indicates the runner has been closed.
	ErrRunnerClosed = errors.New("script runner closed")

	// ErrNoTickFunction indicates the script does not define on_tick.
	ErrNoTickFunction = errors.New("script does not define on_tick")

	// ErrNoPath indicates the runner was loaded from a string and cannot
	// be reloaded or watched.
	ErrNoPath = errors.New("script has no file path")
)

// Error is a failure while loading or running a script.
type Error struct {
	// Path is the script file, or the chunk name for string scripts.
	Path string
	// Op is "load" or "tick".
	Op string
	// Err is the underlying error, usually a *lua.ApiError.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("script %s %s: %v", e.Path, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
