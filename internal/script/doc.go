// Package script runs a Lua script against each ready input tick.
//
// The script defines a global on_tick function. Inside it, a read-only
// input table answers the same questions as input.Reader:
//
//	function on_tick()
//	    if input.key_pressed("Escape") then print("escape") end
//	    if input.code_held("KeyW") then forward() end
//	    local dx, dy = input.mouse_diff()
//	    local typed = input.text()
//	end
//
// Keys are named as key.ParseLogical accepts them ("a", "Enter", "<BS>"),
// codes as key.ParseCode accepts them ("KeyW", "ArrowUp") and buttons by
// name ("left") or extra-button number.
//
// The Lua state is sandboxed: io, os, debug and package are not opened,
// and file loading functions are removed. print writes to the runner's
// logger.
package script
