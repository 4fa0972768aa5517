// Package toasttest provides a manual clock and a recording display for
// tests that drive toast lifecycles.
package toasttest

import (
	"sort"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/toast"
)

// Clock is a manually advanced toast.Clock. Callbacks run synchronously
// inside Advance, outside the clock's lock.
type Clock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*timer
}

type timer struct {
	c       *Clock
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (t *timer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// NewClock returns a clock at time zero.
func NewClock() *Clock { return &Clock{} }

// AfterFunc implements toast.Clock.
func (c *Clock) AfterFunc(d time.Duration, f func()) toast.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &timer{c: c, at: c.now + d, seq: c.seq, f: f}
	c.seq++
	c.timers = append(c.timers, t)
	return t
}

// Now returns the elapsed virtual time.
func (c *Clock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves time forward by d, firing due timers in order. Timers
// scheduled by callbacks fire too if they fall inside the window.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	end := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDue(end)
		if next == nil {
			c.now = end
			c.mu.Unlock()
			return
		}
		c.now = next.at
		next.fired = true
		c.mu.Unlock()

		next.f()
	}
}

// Pending returns the number of live timers.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (c *Clock) nextDue(end time.Duration) *timer {
	var live []*timer
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	c.timers = live
	sort.Slice(live, func(i, j int) bool {
		if live[i].at != live[j].at {
			return live[i].at < live[j].at
		}
		return live[i].seq < live[j].seq
	})
	if len(live) == 0 || live[0].at > end {
		return nil
	}
	return live[0]
}

// Event is one recorded Render call.
type Event struct {
	At    time.Duration
	Toast toast.Toast
}

// Display records every phase change with its virtual timestamp.
type Display struct {
	clock *Clock

	mu     sync.Mutex
	events []Event
	onPage map[string]toast.Toast
}

// NewDisplay returns a Display stamping events with clock.
func NewDisplay(clock *Clock) *Display {
	return &Display{clock: clock, onPage: make(map[string]toast.Toast)}
}

// Render implements toast.Display.
func (d *Display) Render(t toast.Toast) {
	at := time.Duration(0)
	if d.clock != nil {
		at = d.clock.Now()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, Event{At: at, Toast: t})
	if t.Phase == toast.PhaseRemoved {
		delete(d.onPage, t.ID)
	} else {
		d.onPage[t.ID] = t
	}
}

// Events returns a copy of the recorded events.
func (d *Display) Events() []Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Event(nil), d.events...)
}

// OnPage returns the toasts currently inserted and not yet removed.
func (d *Display) OnPage() []toast.Toast {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]toast.Toast, 0, len(d.onPage))
	for _, t := range d.onPage {
		out = append(out, t)
	}
	return out
}
