// Package mouse defines pointer identities and continuous pointer deltas.
//
// Button names a pointer button. Position is an absolute cursor position in
// floating point window coordinates. ScrollDelta carries one wheel or
// touchpad event, measured either in lines or in pixels:
//
//	d := mouse.PixelDelta(0, 38)
//	x, y := d.Lines() // 0, 1
//
// Pixel deltas are normalised with PixelsPerLine so that a consumer only
// ever sees line units.
package mouse
