// Package trace records ready input ticks as JSON lines and reads them
// back.
//
// Each line is one object:
//
//	{"tick":3,"keys":[{"kind":"pressed","key":"a"}],"codes":[...],
//	 "mouse":[],"held":{"keys":["a"],"codes":["KeyA"],"buttons":[]},
//	 "cursor":{"x":4,"y":5},"diff":{"x":3,"y":4},"scroll":{"x":0,"y":2},
//	 "text":"a","close_requested":false,"destroyed":false}
//
// cursor, resolution and modifiers are omitted when unknown or empty.
// Backspace entries in text are written as "\b".
package trace
