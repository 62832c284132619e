// Package terminal is a platform event source for terminals, built on tcell.
//
// Translator turns tcell events into the raw events of package event.
// Terminals report key presses but never releases, so Translator keeps the
// pressed keys and releases each one after a quiet period with no repeat.
//
// Source owns the tcell screen. A goroutine polls it; once per tick the
// host calls Drain, which returns NewTick, the translated events in arrival
// order, synthesized releases and TickComplete, ready to feed to
// input.Helper.Update.
package terminal
