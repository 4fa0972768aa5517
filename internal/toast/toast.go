// Package toast manages the short-lived notification banner.
//
// One toast is on screen at a time. A message shown while another is up
// waits in a single pending slot; a newer message replaces an older pending
// one.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/logging"
)

// Phase is a toast's lifecycle stage.
type Phase int

const (
	PhaseEntering Phase = iota
	PhaseVisible
	PhaseExiting
	PhaseRemoved
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseExiting:
		return "exiting"
	case PhaseRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Toast is a single notification.
type Toast struct {
	ID    string
	Text  string
	Phase Phase
}

// Display renders phase changes. Entering inserts the banner, Visible and
// Exiting toggle its transition class, Removed takes it off the page.
// Render is called with the manager's lock held and must not call back
// into the Manager.
type Display interface {
	Render(t Toast)
}

// Timing is the toast lifecycle schedule. EnterDelay and Visible are
// measured from insertion; Exit is the fade length.
type Timing struct {
	EnterDelay time.Duration
	Visible    time.Duration
	Exit       time.Duration
}

// DefaultTiming shows at 10ms, starts exiting at 2.5s and is removed at
// 2.8s.
var DefaultTiming = Timing{
	EnterDelay: 10 * time.Millisecond,
	Visible:    2500 * time.Millisecond,
	Exit:       300 * time.Millisecond,
}

// Manager owns the current toast slot and its timers.
type Manager struct {
	display Display
	clock   Clock
	timing  Timing
	logger  *zap.Logger

	mu      sync.Mutex
	current *Toast
	timer   Timer
	pending *string
	closed  bool
}

// NewManager returns a Manager. A nil clock uses the real one.
func NewManager(display Display, clock Clock, timing Timing, logger *zap.Logger) *Manager {
	if clock == nil {
		clock = RealClock()
	}
	return &Manager{
		display: display,
		clock:   clock,
		timing:  timing,
		logger:  logging.OrNop(logger),
	}
}

// Show displays text now, or queues it behind the toast on screen.
func (m *Manager) Show(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	if m.current != nil {
		if m.pending != nil {
			m.logger.Debug("replacing pending toast", zap.String("dropped", *m.pending))
		}
		m.pending = &text
		return
	}
	m.start(text)
}

// Current returns the toast on screen, if any.
func (m *Manager) Current() (Toast, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Toast{}, false
	}
	return *m.current, true
}

// Close cancels all timers, removes the toast on screen and drops the
// pending message. Later Show calls are ignored.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	m.pending = nil
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if m.current != nil {
		m.current.Phase = PhaseRemoved
		m.display.Render(*m.current)
		m.current = nil
	}
}

// start must be called with mu held.
func (m *Manager) start(text string) {
	t := &Toast{ID: uuid.NewString(), Text: text, Phase: PhaseEntering}
	m.current = t
	m.display.Render(*t)
	m.schedule(t.ID, m.timing.EnterDelay, PhaseVisible)
}

// schedule must be called with mu held.
func (m *Manager) schedule(id string, d time.Duration, next Phase) {
	m.timer = m.clock.AfterFunc(d, func() { m.advance(id, next) })
}

func (m *Manager) advance(id string, next Phase) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// stale timer from a toast that was already closed out
	if m.closed || m.current == nil || m.current.ID != id {
		return
	}

	m.current.Phase = next
	m.display.Render(*m.current)

	switch next {
	case PhaseVisible:
		m.schedule(id, max(m.timing.Visible-m.timing.EnterDelay, 0), PhaseExiting)
	case PhaseExiting:
		m.schedule(id, m.timing.Exit, PhaseRemoved)
	case PhaseRemoved:
		m.current = nil
		m.timer = nil
		if m.pending != nil {
			text := *m.pending
			m.pending = nil
			m.start(text)
		}
	}
}
