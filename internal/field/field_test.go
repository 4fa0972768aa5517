package field

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqSource replays a fixed sequence, wrapping around.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

type recordingContainer struct {
	batches [][]Element
	current []Element
}

func (r *recordingContainer) Replace(elements []Element) {
	r.batches = append(r.batches, elements)
	r.current = elements
}

func TestCount(t *testing.T) {
	g := NewGenerator(nil)
	tests := []struct {
		name string
		area float64
		want int
	}{
		{"zero area clamps to min", 0, 120},
		{"phone", 375 * 667, 120},
		{"laptop", 1440 * 900, 155},
		{"full hd", 1920 * 1080, 248},
		{"4k clamps to max", 3840 * 2160, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Count(tt.area))
		})
	}
}

func TestGenerateBounds(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(1, 2)))
	for _, vp := range []Viewport{{320, 480}, {1280, 800}, {1920, 1080}, {5120, 2880}} {
		elements := g.Generate(vp.Area())
		require.GreaterOrEqual(t, len(elements), DefaultMin)
		require.LessOrEqual(t, len(elements), DefaultMax)
		for _, e := range elements {
			assert.GreaterOrEqual(t, e.Size, MinSize)
			assert.LessOrEqual(t, e.Size, MaxSize)
			assert.GreaterOrEqual(t, e.Left, 0.0)
			assert.LessOrEqual(t, e.Left, 100.0)
			assert.GreaterOrEqual(t, e.Top, 0.0)
			assert.LessOrEqual(t, e.Top, 100.0)
			assert.GreaterOrEqual(t, e.Delay, 0.0)
			assert.LessOrEqual(t, e.Delay, MaxDelay)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := NewGenerator(&seqSource{vals: []float64{0, 0.5, 0.25, 1}})
	g.Min, g.Max = 2, 2

	want := []Element{
		{Size: 0.8, Left: 50, Top: 25, Delay: 5},
		{Size: 0.8, Left: 50, Top: 25, Delay: 5},
	}
	if diff := cmp.Diff(want, g.Generate(0)); diff != "" {
		t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegenerateReplaces(t *testing.T) {
	f := New(NewGenerator(rand.New(rand.NewPCG(7, 7))), nil)
	c := &recordingContainer{}

	for i := 0; i < 50; i++ {
		n := f.Regenerate(c, Viewport{Width: 1920, Height: 1080})
		require.Equal(t, 248, n)
	}
	assert.Len(t, c.batches, 50)
	assert.Len(t, c.current, 248)
	assert.NotEqual(t, c.batches[0][0], c.batches[1][0], "each batch is freshly drawn")
}

func TestRegenerateWithoutContainer(t *testing.T) {
	f := New(NewGenerator(nil), nil)
	assert.Zero(t, f.Regenerate(nil, Viewport{Width: 800, Height: 600}))
}

func TestElementStyle(t *testing.T) {
	s := Element{Size: 1.5, Left: 12.5, Top: 99, Delay: 2.25}.Style()
	assert.True(t, strings.HasPrefix(s, "width:1.50px;height:1.50px;"))
	assert.Contains(t, s, "left:12.500%;top:99.000%;")
	assert.Contains(t, s, "animation-delay:2.250s")
}

func TestViewportArea(t *testing.T) {
	assert.Equal(t, 1920.0*1080, Viewport{1920, 1080}.Area())
	assert.Zero(t, Viewport{-1, 100}.Area())
}
