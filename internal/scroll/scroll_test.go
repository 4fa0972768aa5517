package scroll

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSpringParameters(t *testing.T) {
	assert.InDelta(t, 24.4949, DefaultSpring.AngularFrequency(), 1e-3)
	assert.InDelta(t, 2.0412, DefaultSpring.DampingRatio(), 1e-3)
	assert.GreaterOrEqual(t, DefaultSpring.DampingRatio(), 1.0, "progress spring must not overshoot")
}

func TestUpdateRaw(t *testing.T) {
	s := New(DefaultSpring, 60)

	s.Update(250, 1000)
	assert.Equal(t, 0.25, s.Raw())

	s.Update(1200, 1000)
	assert.Equal(t, 1.0, s.Raw())

	s.Update(-10, 1000)
	assert.Equal(t, 0.0, s.Raw())

	s.Update(10, 0)
	assert.Equal(t, 0.0, s.Raw(), "a page that cannot scroll has no progress")
}

func TestStepConvergesMonotonically(t *testing.T) {
	s := New(DefaultSpring, 60)
	s.Update(1000, 1000)

	prev := 0.0
	for i := 0; i < 300; i++ {
		p := s.Step()
		require.GreaterOrEqual(t, p, prev-1e-9, "frame %d went backwards", i)
		require.LessOrEqual(t, p, 1.0)
		prev = p
	}
	assert.InDelta(t, 1.0, s.Progress(), 1e-3)
	assert.True(t, s.Settled())

	s.Update(0, 1000)
	for i := 0; i < 300; i++ {
		p := s.Step()
		require.LessOrEqual(t, p, prev+1e-9, "frame %d went forwards", i)
		require.GreaterOrEqual(t, p, 0.0)
		prev = p
	}
	assert.InDelta(t, 0.0, s.Progress(), 1e-3)
}

func TestProgressStaysBounded(t *testing.T) {
	s := New(DefaultSpring, 60)
	offsets := []float64{0, 900, 50, 1000, 0, 1000, 500, 999, 1}
	for _, off := range offsets {
		s.Update(off, 1000)
		for i := 0; i < 5; i++ {
			p := s.Step()
			require.GreaterOrEqual(t, p, 0.0)
			require.LessOrEqual(t, p, 1.0)
		}
	}
}

func TestSubscribe(t *testing.T) {
	s := New(DefaultSpring, 60)
	s.Update(500, 1000)

	var got []float64
	unsubscribe := s.Subscribe(func(p float64) { got = append(got, p) })

	s.Step()
	s.Step()
	require.Len(t, got, 2)
	assert.Greater(t, got[1], got[0])

	unsubscribe()
	unsubscribe()
	s.Step()
	assert.Len(t, got, 2)
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := New(DefaultSpring, 120)
	s.Update(1000, 1000)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.Progress() > 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestRunIdlesWhileSettled(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := New(DefaultSpring, 120)
	var mu sync.Mutex
	frames := 0
	s.Subscribe(func(float64) {
		mu.Lock()
		frames++
		mu.Unlock()
	})
	count := func() int {
		mu.Lock()
		defer mu.Unlock()
		return frames
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, count(), "no frames while at rest")

	s.Update(1000, 1000)
	require.Eventually(t, s.Settled, 3*time.Second, 5*time.Millisecond)
	assert.Positive(t, count())

	time.Sleep(20 * time.Millisecond)
	settled := count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, count(), "no frames once settled")
}
