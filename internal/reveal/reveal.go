// Package reveal fires a one-shot staggered enter animation for each
// content group once enough of it has scrolled into view.
package reveal

import (
	"math"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/logging"
)

const (
	DefaultStagger  = 120 * time.Millisecond
	DefaultDuration = 800 * time.Millisecond
	DefaultOffset   = 30.0
)

// Group is a content section whose children animate in together.
// Amount is the fraction of the group's height that must be visible.
type Group struct {
	Name     string
	Amount   float64
	Children int
}

// Rect is a group's bounding box relative to the viewport top.
type Rect struct {
	Top    float64
	Height float64
}

// Style is a child's visual state.
type Style struct {
	Opacity float64
	OffsetY float64
}

// Step schedules one child's enter transition relative to the reveal.
type Step struct {
	Child    int
	Delay    time.Duration
	Duration time.Duration
	From     Style
	To       Style
}

// Timing controls the stagger between children and each child's tween.
type Timing struct {
	Stagger  time.Duration
	Duration time.Duration
	Offset   float64
}

// DefaultTiming is a 120ms stagger of 800ms fades rising 30px.
var DefaultTiming = Timing{Stagger: DefaultStagger, Duration: DefaultDuration, Offset: DefaultOffset}

// Hidden returns the style of a child that has not been revealed.
func (t Timing) Hidden() Style {
	return Style{Opacity: 0, OffsetY: t.Offset}
}

// Schedule returns the enter steps for n children.
func (t Timing) Schedule(n int) []Step {
	steps := make([]Step, n)
	for i := range steps {
		steps[i] = Step{
			Child:    i,
			Delay:    time.Duration(i) * t.Stagger,
			Duration: t.Duration,
			From:     t.Hidden(),
			To:       Style{Opacity: 1, OffsetY: 0},
		}
	}
	return steps
}

// StyleAt interpolates a step elapsed after the group was revealed.
func StyleAt(s Step, elapsed time.Duration) Style {
	local := elapsed - s.Delay
	switch {
	case local <= 0:
		return s.From
	case s.Duration <= 0 || local >= s.Duration:
		return s.To
	}
	p := easeOut(float64(local) / float64(s.Duration))
	return Style{
		Opacity: s.From.Opacity + (s.To.Opacity-s.From.Opacity)*p,
		OffsetY: s.From.OffsetY + (s.To.OffsetY-s.From.OffsetY)*p,
	}
}

func easeOut(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}

// VisibleFraction returns how much of r lies within a viewport of height vh,
// as a fraction of r's height. A group taller than the viewport counts as
// fully visible once it covers the viewport.
func VisibleFraction(r Rect, vh float64) float64 {
	if vh <= 0 {
		return 0
	}
	if r.Height <= 0 {
		if r.Top >= 0 && r.Top <= vh {
			return 1
		}
		return 0
	}
	visible := math.Min(r.Top+r.Height, vh) - math.Max(r.Top, 0)
	if visible <= 0 {
		return 0
	}
	if visible >= vh {
		return 1
	}
	return visible / r.Height
}

type groupState struct {
	Group
	shown atomic.Bool
}

// Orchestrator owns the reveal state of every registered group. Each group
// flips independently; there is no lock shared between groups.
type Orchestrator struct {
	timing   Timing
	groups   map[string]*groupState
	onReveal func(Group, []Step)
	logger   *zap.Logger
}

// New registers groups up front. onReveal runs once per group, on the
// goroutine whose Observe call crossed the threshold.
func New(timing Timing, groups []Group, onReveal func(Group, []Step), logger *zap.Logger) *Orchestrator {
	m := make(map[string]*groupState, len(groups))
	for _, g := range groups {
		m[g.Name] = &groupState{Group: g}
	}
	return &Orchestrator{
		timing:   timing,
		groups:   m,
		onReveal: onReveal,
		logger:   logging.OrNop(logger),
	}
}

// Observe reports a group's current position. It returns true only for the
// call that revealed the group.
func (o *Orchestrator) Observe(name string, r Rect, viewportHeight float64) bool {
	g, ok := o.groups[name]
	if !ok || g.shown.Load() {
		return false
	}
	if VisibleFraction(r, viewportHeight) < g.Amount {
		return false
	}
	if !g.shown.CompareAndSwap(false, true) {
		return false
	}

	steps := o.timing.Schedule(g.Children)
	o.logger.Debug("group revealed", zap.String("group", g.Name), zap.Int("children", g.Children))
	if o.onReveal != nil {
		o.onReveal(g.Group, steps)
	}
	return true
}

// Revealed reports whether the named group has been shown.
func (o *Orchestrator) Revealed(name string) bool {
	g, ok := o.groups[name]
	return ok && g.shown.Load()
}

// Pending returns the names of groups still hidden.
func (o *Orchestrator) Pending() []string {
	var names []string
	for name, g := range o.groups {
		if !g.shown.Load() {
			names = append(names, name)
		}
	}
	return names
}

// Timing returns the orchestrator's animation timing.
func (o *Orchestrator) Timing() Timing {
	return o.timing
}
