package input

// ActionKind classifies an entry in a per-tick action log.
type ActionKind uint8

const (
	// Pressed is an edge: the identity went from not held to held.
	Pressed ActionKind = iota
	// PressedRepeat is recorded for every raw press, including the one
	// that produced Pressed and every OS auto-repeat after it.
	PressedRepeat
	// Released is recorded for every raw release, held or not.
	Released
)

// String returns a string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case Pressed:
		return "pressed"
	case PressedRepeat:
		return "pressed-repeat"
	case Released:
		return "released"
	default:
		return "unknown"
	}
}

// Action is one entry in an action log, parameterized by the identity type
// (key.Logical, key.Code or mouse.Button).
type Action[K comparable] struct {
	Kind ActionKind
	Key  K
}

// Log is the ordered list of actions recorded during the open tick.
type Log[K comparable] struct {
	entries []Action[K]
}

func (l *Log[K]) push(kind ActionKind, k K) {
	l.entries = append(l.entries, Action[K]{Kind: kind, Key: k})
}

// Contains returns true if the log holds an action of the given kind for k.
func (l *Log[K]) Contains(kind ActionKind, k K) bool {
	for _, a := range l.entries {
		if a.Kind == kind && a.Key == k {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (l *Log[K]) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in arrival order.
func (l *Log[K]) Entries() []Action[K] {
	if len(l.entries) == 0 {
		return nil
	}
	out := make([]Action[K], len(l.entries))
	copy(out, l.entries)
	return out
}

// reset empties the log, keeping its capacity for the next tick.
func (l *Log[K]) reset() {
	clear(l.entries)
	l.entries = l.entries[:0]
}

// HeldTable is the level state of one identity namespace. Entries survive
// ticks; a missing entry means not held.
type HeldTable[K comparable] struct {
	held map[K]bool
}

// Held returns the last observed state of k.
func (t *HeldTable[K]) Held(k K) bool {
	return t.held[k]
}

func (t *HeldTable[K]) set(k K, down bool) {
	if t.held == nil {
		t.held = make(map[K]bool)
	}
	t.held[k] = down
}

// Keys returns every identity currently held, in no particular order.
func (t *HeldTable[K]) Keys() []K {
	var out []K
	for k, down := range t.held {
		if down {
			out = append(out, k)
		}
	}
	return out
}

// track pairs a held table with its action log and applies the edge/level
// rules shared by the logical and physical key namespaces.
type track[K comparable] struct {
	held HeldTable[K]
	log  Log[K]
}

// press records Pressed on the transition from not held, PressedRepeat
// unconditionally, and marks k held.
func (t *track[K]) press(k K) {
	if !t.held.Held(k) {
		t.log.push(Pressed, k)
	}
	t.log.push(PressedRepeat, k)
	t.held.set(k, true)
}

// release records Released and clears the held flag, even if k was not held.
func (t *track[K]) release(k K) {
	t.log.push(Released, k)
	t.held.set(k, false)
}
