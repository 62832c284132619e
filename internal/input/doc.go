// Package input reduces a raw stream of platform input events into a
// per-tick snapshot of input state.
//
// Events arrive at any rate between two ticks. The host feeds every event to
// State.Ingest and calls State.Step once per tick boundary; in between it
// queries what happened during the tick.
//
// # State
//
// State keeps four kinds of data:
//
//   - Held tables: level state per key identity and mouse button. Survives
//     ticks until a later event changes it.
//   - Action logs: edge events (Pressed, PressedRepeat, Released) recorded
//     during the open tick, in arrival order. Cleared by Step.
//   - Continuous accumulators: cursor position plus the position seen at the
//     last Step, and scroll deltas in lines. Scroll is cleared by Step.
//   - Text buffer: typed characters interleaved with backspaces, in typing
//     order. Cleared by Step.
//
// Logical keys (layout dependent) and physical codes (layout independent)
// are tracked in separate tables and logs even though one hardware event
// updates both.
//
// # Edges and Repeats
//
// KeyPressed reports a key that went down from idle during the tick and is
// true for exactly one tick per press. KeyPressedOS also reports OS
// auto-repeats and is true in every tick a press or repeat arrived.
// Mouse buttons have no repeat variant.
//
// # Helper
//
// Helper wraps State for hosts whose event source emits tick lifecycle
// events:
//
//	helper := input.NewHelper()
//	for ev := range source {
//	    if helper.Update(ev) {
//	        s := helper.State()
//	        if s.KeyPressed(key.Char('q')) || s.CloseRequested() {
//	            return
//	        }
//	    }
//	}
//
// # Thread Safety
//
// State and Helper are not safe for concurrent use. They belong to the
// goroutine running the event loop. Metrics may be read from any goroutine.
package input
