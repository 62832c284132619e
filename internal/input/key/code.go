package key

import "strings"

// Code is a layout-independent physical key position. Codes are named after
// the key found at that position on a US QWERTY keyboard, so CodeKeyW is the
// same physical key on every layout.
type Code uint16

const (
	// CodeUnidentified is a key the platform could not place.
	CodeUnidentified Code = iota

	// Letter keys
	CodeKeyA
	CodeKeyB
	CodeKeyC
	CodeKeyD
	CodeKeyE
	CodeKeyF
	CodeKeyG
	CodeKeyH
	CodeKeyI
	CodeKeyJ
	CodeKeyK
	CodeKeyL
	CodeKeyM
	CodeKeyN
	CodeKeyO
	CodeKeyP
	CodeKeyQ
	CodeKeyR
	CodeKeyS
	CodeKeyT
	CodeKeyU
	CodeKeyV
	CodeKeyW
	CodeKeyX
	CodeKeyY
	CodeKeyZ

	// Digit row
	CodeDigit0
	CodeDigit1
	CodeDigit2
	CodeDigit3
	CodeDigit4
	CodeDigit5
	CodeDigit6
	CodeDigit7
	CodeDigit8
	CodeDigit9

	// Punctuation
	CodeBackquote
	CodeMinus
	CodeEqual
	CodeBracketLeft
	CodeBracketRight
	CodeBackslash
	CodeSemicolon
	CodeQuote
	CodeComma
	CodePeriod
	CodeSlash

	// Editing and whitespace
	CodeEscape
	CodeEnter
	CodeTab
	CodeBackspace
	CodeDelete
	CodeInsert
	CodeSpace

	// Navigation
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeArrowUp
	CodeArrowDown
	CodeArrowLeft
	CodeArrowRight

	// Function row
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12

	// Locks and system
	CodeCapsLock
	CodeNumLock
	CodeScrollLock
	CodePrintScreen
	CodePause
	CodeContextMenu

	// Modifiers
	CodeShiftLeft
	CodeShiftRight
	CodeControlLeft
	CodeControlRight
	CodeAltLeft
	CodeAltRight
	CodeSuperLeft
	CodeSuperRight

	// Keypad
	CodeNumpad0
	CodeNumpad1
	CodeNumpad2
	CodeNumpad3
	CodeNumpad4
	CodeNumpad5
	CodeNumpad6
	CodeNumpad7
	CodeNumpad8
	CodeNumpad9
	CodeNumpadAdd
	CodeNumpadSubtract
	CodeNumpadMultiply
	CodeNumpadDivide
	CodeNumpadDecimal
	CodeNumpadEnter
)

var codeNames = [...]string{
	CodeUnidentified:   "Unidentified",
	CodeKeyA:           "KeyA",
	CodeKeyB:           "KeyB",
	CodeKeyC:           "KeyC",
	CodeKeyD:           "KeyD",
	CodeKeyE:           "KeyE",
	CodeKeyF:           "KeyF",
	CodeKeyG:           "KeyG",
	CodeKeyH:           "KeyH",
	CodeKeyI:           "KeyI",
	CodeKeyJ:           "KeyJ",
	CodeKeyK:           "KeyK",
	CodeKeyL:           "KeyL",
	CodeKeyM:           "KeyM",
	CodeKeyN:           "KeyN",
	CodeKeyO:           "KeyO",
	CodeKeyP:           "KeyP",
	CodeKeyQ:           "KeyQ",
	CodeKeyR:           "KeyR",
	CodeKeyS:           "KeyS",
	CodeKeyT:           "KeyT",
	CodeKeyU:           "KeyU",
	CodeKeyV:           "KeyV",
	CodeKeyW:           "KeyW",
	CodeKeyX:           "KeyX",
	CodeKeyY:           "KeyY",
	CodeKeyZ:           "KeyZ",
	CodeDigit0:         "Digit0",
	CodeDigit1:         "Digit1",
	CodeDigit2:         "Digit2",
	CodeDigit3:         "Digit3",
	CodeDigit4:         "Digit4",
	CodeDigit5:         "Digit5",
	CodeDigit6:         "Digit6",
	CodeDigit7:         "Digit7",
	CodeDigit8:         "Digit8",
	CodeDigit9:         "Digit9",
	CodeBackquote:      "Backquote",
	CodeMinus:          "Minus",
	CodeEqual:          "Equal",
	CodeBracketLeft:    "BracketLeft",
	CodeBracketRight:   "BracketRight",
	CodeBackslash:      "Backslash",
	CodeSemicolon:      "Semicolon",
	CodeQuote:          "Quote",
	CodeComma:          "Comma",
	CodePeriod:         "Period",
	CodeSlash:          "Slash",
	CodeEscape:         "Escape",
	CodeEnter:          "Enter",
	CodeTab:            "Tab",
	CodeBackspace:      "Backspace",
	CodeDelete:         "Delete",
	CodeInsert:         "Insert",
	CodeSpace:          "Space",
	CodeHome:           "Home",
	CodeEnd:            "End",
	CodePageUp:         "PageUp",
	CodePageDown:       "PageDown",
	CodeArrowUp:        "ArrowUp",
	CodeArrowDown:      "ArrowDown",
	CodeArrowLeft:      "ArrowLeft",
	CodeArrowRight:     "ArrowRight",
	CodeF1:             "F1",
	CodeF2:             "F2",
	CodeF3:             "F3",
	CodeF4:             "F4",
	CodeF5:             "F5",
	CodeF6:             "F6",
	CodeF7:             "F7",
	CodeF8:             "F8",
	CodeF9:             "F9",
	CodeF10:            "F10",
	CodeF11:            "F11",
	CodeF12:            "F12",
	CodeCapsLock:       "CapsLock",
	CodeNumLock:        "NumLock",
	CodeScrollLock:     "ScrollLock",
	CodePrintScreen:    "PrintScreen",
	CodePause:          "Pause",
	CodeContextMenu:    "ContextMenu",
	CodeShiftLeft:      "ShiftLeft",
	CodeShiftRight:     "ShiftRight",
	CodeControlLeft:    "ControlLeft",
	CodeControlRight:   "ControlRight",
	CodeAltLeft:        "AltLeft",
	CodeAltRight:       "AltRight",
	CodeSuperLeft:      "SuperLeft",
	CodeSuperRight:     "SuperRight",
	CodeNumpad0:        "Numpad0",
	CodeNumpad1:        "Numpad1",
	CodeNumpad2:        "Numpad2",
	CodeNumpad3:        "Numpad3",
	CodeNumpad4:        "Numpad4",
	CodeNumpad5:        "Numpad5",
	CodeNumpad6:        "Numpad6",
	CodeNumpad7:        "Numpad7",
	CodeNumpad8:        "Numpad8",
	CodeNumpad9:        "Numpad9",
	CodeNumpadAdd:      "NumpadAdd",
	CodeNumpadSubtract: "NumpadSubtract",
	CodeNumpadMultiply: "NumpadMultiply",
	CodeNumpadDivide:   "NumpadDivide",
	CodeNumpadDecimal:  "NumpadDecimal",
	CodeNumpadEnter:    "NumpadEnter",
}

// String returns the code name, e.g. "KeyW" or "ShiftLeft".
func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "Unidentified"
}

// Modifier returns the modifier this code contributes, or ModNone.
func (c Code) Modifier() Modifier {
	switch c {
	case CodeShiftLeft, CodeShiftRight:
		return ModShift
	case CodeControlLeft, CodeControlRight:
		return ModCtrl
	case CodeAltLeft, CodeAltRight:
		return ModAlt
	case CodeSuperLeft, CodeSuperRight:
		return ModMeta
	}
	return ModNone
}

var codeNameMap = func() map[string]Code {
	m := make(map[string]Code, len(codeNames))
	for i, name := range codeNames {
		m[strings.ToLower(name)] = Code(i)
	}
	return m
}()

// CodeFromName returns the Code for a name such as "KeyA", "Digit1" or
// "ShiftLeft" (case-insensitive). Returns CodeUnidentified if unknown.
func CodeFromName(name string) Code {
	if c, ok := codeNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return CodeUnidentified
}

// runeCodes maps unshifted and shifted US QWERTY characters to their key.
var runeCodes = map[rune]Code{
	'`': CodeBackquote, '~': CodeBackquote,
	'-': CodeMinus, '_': CodeMinus,
	'=': CodeEqual, '+': CodeEqual,
	'[': CodeBracketLeft, '{': CodeBracketLeft,
	']': CodeBracketRight, '}': CodeBracketRight,
	'\\': CodeBackslash, '|': CodeBackslash,
	';': CodeSemicolon, ':': CodeSemicolon,
	'\'': CodeQuote, '"': CodeQuote,
	',': CodeComma, '<': CodeComma,
	'.': CodePeriod, '>': CodePeriod,
	'/': CodeSlash, '?': CodeSlash,
	' ': CodeSpace,
	'!': CodeDigit1, '@': CodeDigit2, '#': CodeDigit3, '$': CodeDigit4, '%': CodeDigit5,
	'^': CodeDigit6, '&': CodeDigit7, '*': CodeDigit8, '(': CodeDigit9, ')': CodeDigit0,
}

// CodeForRune guesses the physical key that produces r on a US QWERTY
// layout. Sources that only report characters use it to fill in a code.
func CodeForRune(r rune) Code {
	switch {
	case r >= 'a' && r <= 'z':
		return CodeKeyA + Code(r-'a')
	case r >= 'A' && r <= 'Z':
		return CodeKeyA + Code(r-'A')
	case r >= '0' && r <= '9':
		return CodeDigit0 + Code(r-'0')
	}
	if c, ok := runeCodes[r]; ok {
		return c
	}
	return CodeUnidentified
}

// CodeForKey returns the default physical code for a named key.
func CodeForKey(k Key) Code {
	switch k {
	case KeyEscape:
		return CodeEscape
	case KeyEnter:
		return CodeEnter
	case KeyTab:
		return CodeTab
	case KeyBackspace:
		return CodeBackspace
	case KeyDelete:
		return CodeDelete
	case KeyInsert:
		return CodeInsert
	case KeyHome:
		return CodeHome
	case KeyEnd:
		return CodeEnd
	case KeyPageUp:
		return CodePageUp
	case KeyPageDown:
		return CodePageDown
	case KeyUp:
		return CodeArrowUp
	case KeyDown:
		return CodeArrowDown
	case KeyLeft:
		return CodeArrowLeft
	case KeyRight:
		return CodeArrowRight
	case KeySpace:
		return CodeSpace
	case KeyPause:
		return CodePause
	case KeyPrintScreen:
		return CodePrintScreen
	case KeyScrollLock:
		return CodeScrollLock
	case KeyNumLock:
		return CodeNumLock
	case KeyCapsLock:
		return CodeCapsLock
	case KeyShift:
		return CodeShiftLeft
	case KeyControl:
		return CodeControlLeft
	case KeyAlt:
		return CodeAltLeft
	case KeySuper:
		return CodeSuperLeft
	case KeyKPAdd:
		return CodeNumpadAdd
	case KeyKPSubtract:
		return CodeNumpadSubtract
	case KeyKPMultiply:
		return CodeNumpadMultiply
	case KeyKPDivide:
		return CodeNumpadDivide
	case KeyKPDecimal:
		return CodeNumpadDecimal
	case KeyKPEnter:
		return CodeNumpadEnter
	}
	if k.IsFunctionKey() {
		return CodeF1 + Code(k-KeyF1)
	}
	if k >= KeyKP0 && k <= KeyKP9 {
		return CodeNumpad0 + Code(k-KeyKP0)
	}
	return CodeUnidentified
}
