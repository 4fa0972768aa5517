// Package field generates the decorative star field drawn behind the page.
//
// Generation is pure: Generate returns element data and the caller's
// Container turns it into visual output.
package field

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/logging"
)

const (
	DefaultDensity = 0.00012
	DefaultMin     = 120
	DefaultMax     = 300

	MinSize  = 0.8
	MaxSize  = 2.8
	MaxDelay = 5.0
)

// Viewport is the live window size in CSS pixels.
type Viewport struct {
	Width, Height float64
}

// Area returns Width × Height, or 0 for degenerate sizes.
func (v Viewport) Area() float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 0
	}
	return v.Width * v.Height
}

// Element is one star. Left and Top are percentages of the container,
// Delay is the pulse animation offset in seconds.
type Element struct {
	Size  float64
	Left  float64
	Top   float64
	Delay float64
}

// Style renders the element as inline CSS.
func (e Element) Style() string {
	var b strings.Builder
	fmt.Fprintf(&b, "width:%.2fpx;height:%.2fpx;", e.Size, e.Size)
	fmt.Fprintf(&b, "left:%.3f%%;top:%.3f%%;", e.Left, e.Top)
	fmt.Fprintf(&b, "animation-delay:%.3fs", e.Delay)
	return b.String()
}

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Generator holds the density parameters and random source.
type Generator struct {
	Density float64
	Min     int
	Max     int
	Rand    Source
}

// NewGenerator returns a generator with the default density and bounds.
// A nil src uses the process-wide random source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{
		Density: DefaultDensity,
		Min:     DefaultMin,
		Max:     DefaultMax,
		Rand:    src,
	}
}

// Count returns clamp(floor(area × density), Min, Max).
func (g *Generator) Count(area float64) int {
	n := int(math.Floor(area * g.Density))
	if n < g.Min {
		n = g.Min
	}
	if n > g.Max {
		n = g.Max
	}
	return n
}

// Generate builds a fresh batch of elements for the given area.
func (g *Generator) Generate(area float64) []Element {
	n := g.Count(area)
	out := make([]Element, n)
	for i := range out {
		out[i] = Element{
			Size:  MinSize + g.Rand.Float64()*(MaxSize-MinSize),
			Left:  g.Rand.Float64() * 100,
			Top:   g.Rand.Float64() * 100,
			Delay: g.Rand.Float64() * MaxDelay,
		}
	}
	return out
}

// Container receives a full replacement batch. Implementations must drop
// every previously rendered element.
type Container interface {
	Replace(elements []Element)
}

// Field regenerates a container on mount and on every resize.
type Field struct {
	gen    *Generator
	logger *zap.Logger
}

// New returns a Field backed by gen.
func New(gen *Generator, logger *zap.Logger) *Field {
	return &Field{gen: gen, logger: logging.OrNop(logger)}
}

// Regenerate replaces the container contents with a new batch sized to vp.
// A nil container means the page has not mounted it yet and is ignored.
// It reports the number of elements written.
func (f *Field) Regenerate(c Container, vp Viewport) int {
	if c == nil {
		f.logger.Debug("star container not mounted, skipping regeneration")
		return 0
	}
	elements := f.gen.Generate(vp.Area())
	c.Replace(elements)
	f.logger.Debug("star field regenerated",
		zap.Float64("width", vp.Width),
		zap.Float64("height", vp.Height),
		zap.Int("count", len(elements)))
	return len(elements)
}
