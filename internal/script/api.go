package script

import (
	"github.com/dshills/inputstate/internal/input"
	"github.com/dshills/inputstate/internal/input/key"
	"github.com/dshills/inputstate/internal/input/mouse"
	lua "github.com/yuin/gopher-lua"
)

// inputModule builds the global "input" table. current returns the state
// of the tick being run, or nil outside on_tick.
type inputModule struct {
	current func() input.Reader
	ticks   func() uint64
}

func (m *inputModule) install(L *lua.LState) {
	api := L.NewTable()
	L.SetFuncs(api, map[string]lua.LGFunction{
		"key_pressed":    m.logical(input.Reader.KeyPressed),
		"key_pressed_os": m.logical(input.Reader.KeyPressedOS),
		"key_held":       m.logical(input.Reader.KeyHeld),
		"key_released":   m.logical(input.Reader.KeyReleased),

		"code_pressed":    m.code(input.Reader.CodePressed),
		"code_pressed_os": m.code(input.Reader.CodePressedOS),
		"code_held":       m.code(input.Reader.CodeHeld),
		"code_released":   m.code(input.Reader.CodeReleased),

		"mouse_pressed":  m.button(input.Reader.MousePressed),
		"mouse_held":     m.button(input.Reader.MouseHeld),
		"mouse_released": m.button(input.Reader.MouseReleased),

		"mouse_position":  m.mousePosition,
		"mouse_diff":      m.mouseDiff,
		"scroll_diff":     m.scrollDiff,
		"text":            m.text,
		"resolution":      m.resolution,
		"modifiers":       m.modifiers,
		"code_modifiers":  m.codeModifiers,
		"held_keys":       m.heldKeys,
		"close_requested": m.flag(input.Reader.CloseRequested),
		"destroyed":       m.flag(input.Reader.Destroyed),
		"held_shift":      m.flag(input.Reader.HeldShift),
		"held_control":    m.flag(input.Reader.HeldControl),
		"held_alt":        m.flag(input.Reader.HeldAlt),
		"tick":            m.tick,
	})
	L.SetGlobal("input", readOnly(L, "input", api))
}

func (m *inputModule) reader(L *lua.LState) input.Reader {
	r := m.current()
	if r == nil {
		L.RaiseError("input is only available inside on_tick")
	}
	return r
}

func (m *inputModule) logical(query func(input.Reader, key.Logical) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		r := m.reader(L)
		k, err := key.ParseLogical(L.CheckString(1))
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		L.Push(lua.LBool(query(r, k)))
		return 1
	}
}

func (m *inputModule) code(query func(input.Reader, key.Code) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		r := m.reader(L)
		c, err := key.ParseCode(L.CheckString(1))
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		L.Push(lua.LBool(query(r, c)))
		return 1
	}
}

func (m *inputModule) button(query func(input.Reader, mouse.Button) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		r := m.reader(L)
		var b mouse.Button
		switch v := L.Get(1).(type) {
		case lua.LNumber:
			if v < 0 || v > 250 {
				L.ArgError(1, "button number out of range")
				return 0
			}
			b = mouse.Other(uint8(v))
		case lua.LString:
			var ok bool
			if b, ok = mouse.ButtonFromName(string(v)); !ok {
				L.ArgError(1, "unknown mouse button "+string(v))
				return 0
			}
		default:
			L.TypeError(1, lua.LTString)
			return 0
		}
		L.Push(lua.LBool(query(r, b)))
		return 1
	}
}

func (m *inputModule) flag(query func(input.Reader) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LBool(query(m.reader(L))))
		return 1
	}
}

func (m *inputModule) mousePosition(L *lua.LState) int {
	pos, ok := m.reader(L).MousePosition()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(pos.X))
	L.Push(lua.LNumber(pos.Y))
	return 2
}

func (m *inputModule) mouseDiff(L *lua.LState) int {
	d := m.reader(L).MouseDiff()
	L.Push(lua.LNumber(d.X))
	L.Push(lua.LNumber(d.Y))
	return 2
}

func (m *inputModule) scrollDiff(L *lua.LState) int {
	x, y := m.reader(L).ScrollDiff()
	L.Push(lua.LNumber(x))
	L.Push(lua.LNumber(y))
	return 2
}

// text returns this tick's typed text with backspaces as "\b".
func (m *inputModule) text(L *lua.LState) int {
	L.Push(lua.LString(input.EncodeText(m.reader(L).Text())))
	return 1
}

func (m *inputModule) resolution(L *lua.LState) int {
	w, h, ok := m.reader(L).Resolution()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(w))
	L.Push(lua.LNumber(h))
	return 2
}

func (m *inputModule) modifiers(L *lua.LState) int {
	L.Push(lua.LString(m.reader(L).Modifiers().String()))
	return 1
}

func (m *inputModule) codeModifiers(L *lua.LState) int {
	L.Push(lua.LString(m.reader(L).CodeModifiers().String()))
	return 1
}

func (m *inputModule) heldKeys(L *lua.LState) int {
	t := L.NewTable()
	for _, k := range m.reader(L).HeldKeys() {
		t.Append(lua.LString(k.String()))
	}
	L.Push(t)
	return 1
}

func (m *inputModule) tick(L *lua.LState) int {
	L.Push(lua.LNumber(m.ticks()))
	return 1
}
