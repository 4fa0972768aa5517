package reveal

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleFraction(t *testing.T) {
	const vh = 800
	tests := []struct {
		name string
		rect Rect
		want float64
	}{
		{"below viewport", Rect{Top: 900, Height: 400}, 0},
		{"above viewport", Rect{Top: -500, Height: 400}, 0},
		{"quarter in from bottom", Rect{Top: 700, Height: 400}, 0.25},
		{"fully inside", Rect{Top: 100, Height: 400}, 1},
		{"half scrolled past top", Rect{Top: -200, Height: 400}, 0.5},
		{"taller than viewport covering it", Rect{Top: -100, Height: 2000}, 1},
		{"taller than viewport partially in", Rect{Top: 400, Height: 2000}, 0.2},
		{"zero height inside", Rect{Top: 10}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, VisibleFraction(tt.rect, vh), 1e-9)
		})
	}
}

func TestSchedule(t *testing.T) {
	steps := DefaultTiming.Schedule(4)
	require.Len(t, steps, 4)
	for i, s := range steps {
		assert.Equal(t, i, s.Child)
		assert.Equal(t, time.Duration(i)*120*time.Millisecond, s.Delay)
		assert.Equal(t, 800*time.Millisecond, s.Duration)
		assert.Equal(t, Style{Opacity: 0, OffsetY: 30}, s.From)
		assert.Equal(t, Style{Opacity: 1, OffsetY: 0}, s.To)
	}
}

func TestStyleAt(t *testing.T) {
	s := DefaultTiming.Schedule(3)[2] // starts at 240ms

	assert.Equal(t, DefaultTiming.Hidden(), StyleAt(s, 0))
	assert.Equal(t, DefaultTiming.Hidden(), StyleAt(s, 240*time.Millisecond))

	mid := StyleAt(s, 640*time.Millisecond)
	assert.Greater(t, mid.Opacity, 0.5)
	assert.Less(t, mid.Opacity, 1.0)
	assert.Greater(t, mid.OffsetY, 0.0)
	assert.Less(t, mid.OffsetY, 15.0)

	assert.Equal(t, Style{Opacity: 1}, StyleAt(s, 1040*time.Millisecond))
	assert.Equal(t, Style{Opacity: 1}, StyleAt(s, time.Hour))
}

func TestObserveRevealsOnce(t *testing.T) {
	var calls []string
	o := New(DefaultTiming, []Group{{Name: "skills", Amount: 0.2, Children: 4}}, func(g Group, steps []Step) {
		calls = append(calls, g.Name)
		assert.Len(t, steps, 4)
	}, nil)

	const vh = 800
	assert.False(t, o.Observe("skills", Rect{Top: 790, Height: 500}, vh), "2% visible")
	assert.False(t, o.Revealed("skills"))

	assert.True(t, o.Observe("skills", Rect{Top: 600, Height: 500}, vh), "40% visible")
	assert.True(t, o.Revealed("skills"))

	// scroll away, come back, scroll away again
	assert.False(t, o.Observe("skills", Rect{Top: 2000, Height: 500}, vh))
	assert.True(t, o.Revealed("skills"), "leaving the viewport does not re-hide")
	assert.False(t, o.Observe("skills", Rect{Top: 100, Height: 500}, vh))
	assert.False(t, o.Observe("skills", Rect{Top: -2000, Height: 500}, vh))

	assert.Equal(t, []string{"skills"}, calls)
	assert.Empty(t, o.Pending())
}

func TestObserveThresholdPerGroup(t *testing.T) {
	o := New(DefaultTiming, []Group{
		{Name: "home", Amount: 0.4, Children: 4},
		{Name: "projects", Amount: 0.2, Children: 6},
	}, nil, nil)

	r := Rect{Top: 500, Height: 1000} // 30% of 800px viewport
	assert.False(t, o.Observe("home", r, 800))
	assert.True(t, o.Observe("projects", r, 800))
	assert.ElementsMatch(t, []string{"home"}, o.Pending())
}

func TestObserveUnknownGroup(t *testing.T) {
	o := New(DefaultTiming, nil, nil, nil)
	assert.False(t, o.Observe("missing", Rect{Top: 0, Height: 100}, 800))
	assert.False(t, o.Revealed("missing"))
}

func TestConcurrentGroupsRevealIndependently(t *testing.T) {
	var groups []Group
	for i := 0; i < 8; i++ {
		groups = append(groups, Group{Name: fmt.Sprintf("g%d", i), Amount: 0.2, Children: 3})
	}
	var fired atomic.Int32
	o := New(DefaultTiming, groups, func(Group, []Step) { fired.Add(1) }, nil)

	var wg sync.WaitGroup
	for _, g := range groups {
		for j := 0; j < 10; j++ {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				o.Observe(name, Rect{Top: 0, Height: 300}, 800)
			}(g.Name)
		}
	}
	wg.Wait()

	assert.Equal(t, int32(len(groups)), fired.Load(), "each group fires exactly once")
	for _, g := range groups {
		assert.True(t, o.Revealed(g.Name))
	}
}
