package terminal

import (
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputstate/internal/input"
	"github.com/dshills/inputstate/internal/input/event"
)

// ErrSourceClosed is returned when starting a closed source.
var ErrSourceClosed = errors.New("terminal source closed")

// defaultQueueSize bounds the events buffered between two ticks.
const defaultQueueSize = 256

// Source is a platform event source backed by a tcell screen. A goroutine
// polls the screen; the host drains the queued events once per tick.
type Source struct {
	screen     tcell.Screen
	translator *Translator
	metrics    *input.Metrics

	events chan tcell.Event
	done   chan struct{}
	wg     sync.WaitGroup

	mu        sync.Mutex
	started   bool
	closed    bool
	destroyed bool
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithTranslator replaces the default translator.
func WithTranslator(t *Translator) SourceOption {
	return func(s *Source) {
		s.translator = t
	}
}

// WithSourceMetrics records dropped events into m.
func WithSourceMetrics(m *input.Metrics) SourceOption {
	return func(s *Source) {
		s.metrics = m
	}
}

// WithQueueSize sets how many tcell events may wait between two drains.
func WithQueueSize(n int) SourceOption {
	return func(s *Source) {
		if n > 0 {
			s.events = make(chan tcell.Event, n)
		}
	}
}

// NewSource wraps screen. The screen is initialised by Start.
func NewSource(screen tcell.Screen, opts ...SourceOption) *Source {
	s := &Source{
		screen:     screen,
		translator: NewTranslator(),
		events:     make(chan tcell.Event, defaultQueueSize),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initialises the screen, enables mouse reporting and starts polling.
func (s *Source) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSourceClosed
	}
	if s.started {
		return nil
	}

	if err := s.screen.Init(); err != nil {
		return err
	}
	s.screen.EnableMouse()
	s.started = true

	s.wg.Add(1)
	go s.poll()
	return nil
}

// poll moves screen events into the queue until the screen is finalised.
// PollEvent returns nil once Fini has been called.
func (s *Source) poll() {
	defer s.wg.Done()

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case s.events <- ev:
		case <-s.done:
			return
		default:
			// Queue full: the host is not draining fast enough.
			if s.metrics != nil {
				s.metrics.RecordDroppedEvent()
			}
		}
	}
}

// Drain returns one tick worth of raw events: NewTick, every queued event
// translated in arrival order, synthesized key releases, and TickComplete.
// After Close the final drain reports Destroyed.
func (s *Source) Drain(now time.Time) []event.Event {
	out := []event.Event{event.NewTick{}}

	for {
		var ev tcell.Event
		select {
		case ev = <-s.events:
		default:
		}
		if ev == nil {
			break
		}
		out = append(out, s.translator.Translate(ev, eventTime(ev, now))...)
	}

	out = append(out, s.translator.Expire(now)...)

	s.mu.Lock()
	if s.closed && !s.destroyed {
		s.destroyed = true
		out = append(out, s.translator.ReleaseAll()...)
		out = append(out, event.Destroyed{})
	}
	s.mu.Unlock()

	return append(out, event.TickComplete{})
}

// eventTime returns when ev was generated, falling back to now for events
// without a timestamp.
func eventTime(ev tcell.Event, now time.Time) time.Time {
	if at := ev.When(); !at.IsZero() {
		return at
	}
	return now
}

// Screen returns the underlying screen for rendering.
func (s *Source) Screen() tcell.Screen {
	return s.screen
}

// Close finalises the screen and stops polling. It is safe to call more
// than once.
func (s *Source) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	started := s.started
	s.mu.Unlock()

	close(s.done)
	if started {
		s.screen.Fini()
		s.wg.Wait()
	}
}
