// Package scroll maps the page scroll fraction to a spring-smoothed
// progress value for the progress bar.
package scroll

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring is a mass-spring-damper described the way CSS animation libraries
// describe it.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// DefaultSpring matches the progress bar's tuning.
var DefaultSpring = Spring{Stiffness: 120, Damping: 20, Mass: 0.2}

// AngularFrequency is sqrt(k/m).
func (s Spring) AngularFrequency() float64 {
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio is c / (2·sqrt(k·m)). Values >= 1 never overshoot.
func (s Spring) DampingRatio() float64 {
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// Synchronizer tracks the raw scroll fraction and its smoothed follower.
type Synchronizer struct {
	fps    int
	spring harmonica.Spring

	mu       sync.Mutex
	raw      float64
	pos, vel float64
	subs     map[int]func(float64)
	nextSub  int
}

// New returns a Synchronizer stepping s at fps frames per second.
func New(s Spring, fps int) *Synchronizer {
	if fps <= 0 {
		fps = 60
	}
	return &Synchronizer{
		fps:    fps,
		spring: harmonica.NewSpring(harmonica.FPS(fps), s.AngularFrequency(), s.DampingRatio()),
		subs:   make(map[int]func(float64)),
	}
}

// Update records a scroll event. maxOffset is scrollHeight - clientHeight.
func (s *Synchronizer) Update(offset, maxOffset float64) {
	raw := 0.0
	if maxOffset > 0 {
		raw = clamp01(offset / maxOffset)
	}
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
}

// Raw returns the latest unsmoothed fraction.
func (s *Synchronizer) Raw() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// Progress returns the smoothed fraction in [0, 1].
func (s *Synchronizer) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clamp01(s.pos)
}

// Step advances the spring one frame toward the raw fraction and notifies
// subscribers with the new progress.
func (s *Synchronizer) Step() float64 {
	s.mu.Lock()
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.raw)
	p := clamp01(s.pos)
	subs := make([]func(float64), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(p)
	}
	return p
}

// Settled reports whether the follower has reached the raw value.
func (s *Synchronizer) Settled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return math.Abs(s.pos-s.raw) < 1e-4 && math.Abs(s.vel) < 1e-4
}

// Subscribe registers fn to receive progress after every step. The returned
// function removes it.
func (s *Synchronizer) Subscribe(fn func(progress float64)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Run steps the spring once per frame until ctx is done. The spring keeps
// settling between scroll events; frames at rest are skipped.
func (s *Synchronizer) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.Settled() {
				s.Step()
			}
		}
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
