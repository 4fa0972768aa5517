package toast_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Zachkp/portfolio/internal/toast"
	"github.com/Zachkp/portfolio/internal/toast/toasttest"
)

func newManager() (*toast.Manager, *toasttest.Clock, *toasttest.Display) {
	clock := toasttest.NewClock()
	display := toasttest.NewDisplay(clock)
	return toast.NewManager(display, clock, toast.DefaultTiming, nil), clock, display
}

func phases(events []toasttest.Event) []toast.Phase {
	out := make([]toast.Phase, len(events))
	for i, e := range events {
		out[i] = e.Toast.Phase
	}
	return out
}

func TestLifecycle(t *testing.T) {
	m, clock, display := newManager()

	m.Show("Thanks! Your message has been sent.")
	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, toast.PhaseEntering, cur.Phase)
	assert.NotEmpty(t, cur.ID)

	clock.Advance(10 * time.Millisecond)
	cur, _ = m.Current()
	assert.Equal(t, toast.PhaseVisible, cur.Phase)

	clock.Advance(2489 * time.Millisecond)
	cur, _ = m.Current()
	assert.Equal(t, toast.PhaseVisible, cur.Phase)

	clock.Advance(time.Millisecond)
	cur, _ = m.Current()
	assert.Equal(t, toast.PhaseExiting, cur.Phase)

	clock.Advance(299 * time.Millisecond)
	_, ok = m.Current()
	assert.True(t, ok)

	clock.Advance(time.Millisecond)
	_, ok = m.Current()
	assert.False(t, ok)
	assert.Empty(t, display.OnPage())

	events := display.Events()
	assert.Equal(t, []toast.Phase{
		toast.PhaseEntering, toast.PhaseVisible, toast.PhaseExiting, toast.PhaseRemoved,
	}, phases(events))
	assert.Equal(t, []time.Duration{0, 10 * time.Millisecond, 2500 * time.Millisecond, 2800 * time.Millisecond},
		[]time.Duration{events[0].At, events[1].At, events[2].At, events[3].At})

	// removed within 2500–2800ms of insertion
	onScreen := events[3].At - events[0].At
	assert.GreaterOrEqual(t, onScreen, 2500*time.Millisecond)
	assert.LessOrEqual(t, onScreen, 2800*time.Millisecond)
	assert.Zero(t, clock.Pending())
}

func TestRemovalCountsFromInsertion(t *testing.T) {
	clock := toasttest.NewClock()
	display := toasttest.NewDisplay(clock)
	m := toast.NewManager(display, clock, toast.Timing{
		EnterDelay: 10 * time.Millisecond,
		Visible:    5 * time.Millisecond,
		Exit:       20 * time.Millisecond,
	}, nil)

	m.Show("short")
	clock.Advance(10 * time.Millisecond)
	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, toast.PhaseExiting, cur.Phase, "exit already due when the toast becomes visible")

	clock.Advance(20 * time.Millisecond)
	assert.Empty(t, display.OnPage())
}

func TestOneToastAtATime(t *testing.T) {
	m, clock, display := newManager()

	m.Show("first")
	clock.Advance(500 * time.Millisecond)
	m.Show("second")
	m.Show("third") // replaces "second" in the pending slot

	require.Len(t, display.OnPage(), 1)
	assert.Equal(t, "first", display.OnPage()[0].Text)

	clock.Advance(2300 * time.Millisecond) // first removed at 2800ms
	onPage := display.OnPage()
	require.Len(t, onPage, 1)
	assert.Equal(t, "third", onPage[0].Text)
	assert.Equal(t, toast.PhaseEntering, onPage[0].Phase)

	clock.Advance(3 * time.Second)
	assert.Empty(t, display.OnPage())

	for _, e := range display.Events() {
		assert.NotEqual(t, "second", e.Toast.Text)
	}
}

func TestCloseCancelsTimers(t *testing.T) {
	m, clock, display := newManager()

	m.Show("first")
	m.Show("queued")
	clock.Advance(100 * time.Millisecond)

	m.Close()
	assert.Empty(t, display.OnPage())
	assert.Zero(t, clock.Pending())

	m.Show("after close")
	clock.Advance(10 * time.Second)
	assert.Empty(t, display.OnPage())

	last := display.Events()[len(display.Events())-1]
	assert.Equal(t, toast.PhaseRemoved, last.Toast.Phase)
	assert.Equal(t, "first", last.Toast.Text)

	m.Close()
}

type syncDisplay struct {
	mu    sync.Mutex
	calls []toast.Toast
}

func (d *syncDisplay) Render(t toast.Toast) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, t)
}

func (d *syncDisplay) last() toast.Toast {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls[len(d.calls)-1]
}

func TestRealClock(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := &syncDisplay{}
	m := toast.NewManager(d, nil, toast.Timing{
		EnterDelay: time.Millisecond,
		Visible:    5 * time.Millisecond,
		Exit:       time.Millisecond,
	}, nil)

	m.Show("hello")
	require.Eventually(t, func() bool {
		return d.last().Phase == toast.PhaseRemoved
	}, time.Second, time.Millisecond)
	m.Close()
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "visible", toast.PhaseVisible.String())
	assert.Equal(t, "unknown", toast.Phase(42).String())
}
