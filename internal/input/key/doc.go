// Package key defines the key identities used by the input reducer.
//
// The same hardware key event is indexed two ways:
//
//   - Logical: layout-dependent identity. Either a named key (Enter,
//     Backspace, Shift) or the character the active layout produced.
//     Use it for text-oriented queries.
//   - Code: layout-independent physical position, named after the US QWERTY
//     key at that position. Use it for layout-agnostic controls such as WASD.
//
// The two namespaces are never merged: a layout change can alter the
// logical identity of a key without touching its code.
//
// # Key Specifications
//
// ParseLogical and ParseCode turn human-readable names into identities:
//
//	l, _ := key.ParseLogical("Backspace") // key.Named(key.KeyBackspace)
//	l, _ = key.ParseLogical("a")          // key.Char('a')
//	c, _ := key.ParseCode("KeyW")         // key.CodeKeyW
package key
