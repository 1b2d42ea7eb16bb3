package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

const (
	// DefaultMargin is the canvas padding around the plot area, in pixels.
	DefaultMargin = 40.0

	// worldPadding is the fraction of the larger bound span added on each
	// side so outlines never touch the frame.
	worldPadding = 0.08

	// gridTarget is the approximate number of grid lines along the longer
	// axis.
	gridTarget = 8

	// maxGridLines caps the lines per axis. Far from the origin the step
	// falls below float64 resolution and the grid is dropped.
	maxGridLines = 1000
)

// Viewport maps figure coordinates (y up) onto a canvas (y down) with equal
// scaling on both axes.
type Viewport struct {
	Width, Height float64
	Margin        float64

	world orb.Bound
	scale float64
}

// NewViewport fits the bound b into a width×height canvas. The bound is
// padded, then grown along one axis so the visible world has the same aspect
// ratio as the plot area; a unit in x is always the same length as a unit
// in y.
func NewViewport(b orb.Bound, width, height, margin float64) Viewport {
	if margin < 0 || 2*margin >= math.Min(width, height) {
		margin = 0
	}
	plotW, plotH := width-2*margin, height-2*margin

	span := math.Max(b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y())
	if span <= 0 {
		span = 1
	}
	b = b.Pad(span * worldPadding)

	bw, bh := b.Max.X()-b.Min.X(), b.Max.Y()-b.Min.Y()
	scale := math.Min(plotW/bw, plotH/bh)

	// Center the padded bound in the plot area and record the world
	// rectangle that the whole plot area shows.
	c := b.Center()
	halfW, halfH := plotW/scale/2, plotH/scale/2
	world := orb.Bound{
		Min: orb.Point{c.X() - halfW, c.Y() - halfH},
		Max: orb.Point{c.X() + halfW, c.Y() + halfH},
	}

	return Viewport{Width: width, Height: height, Margin: margin, world: world, scale: scale}
}

// World returns the figure-space rectangle covered by the plot area.
func (v Viewport) World() orb.Bound { return v.world }

// Scale returns the number of pixels per figure unit.
func (v Viewport) Scale() float64 { return v.scale }

// Point converts a figure point to canvas coordinates.
func (v Viewport) Point(p orb.Point) (x, y float64) {
	x = v.Margin + (p.X()-v.world.Min.X())*v.scale
	y = v.Height - v.Margin - (p.Y()-v.world.Min.Y())*v.scale
	return x, y
}

// Length converts a figure distance to pixels.
func (v Viewport) Length(d float64) float64 { return d * v.scale }

// Grid holds the positions of the background grid lines in figure
// coordinates.
type Grid struct {
	Step float64
	X, Y []float64
}

// Grid returns grid lines at a "nice" step covering the visible world.
func (v Viewport) Grid() Grid {
	span := math.Max(v.world.Max.X()-v.world.Min.X(), v.world.Max.Y()-v.world.Min.Y())
	step := NiceStep(span / gridTarget)
	return Grid{
		Step: step,
		X:    gridLines(v.world.Min.X(), v.world.Max.X(), step),
		Y:    gridLines(v.world.Min.Y(), v.world.Max.Y(), step),
	}
}

func gridLines(lo, hi, step float64) []float64 {
	first, last := math.Ceil(lo/step), math.Floor(hi/step)
	n := last - first + 1
	if math.IsNaN(n) || n < 1 || n > maxGridLines {
		return nil
	}
	// Adjacent indices must map to distinct lines.
	if first+1 == first || last-1 == last {
		return nil
	}

	out := make([]float64, 0, int(n))
	for k := 0; k < int(n); k++ {
		out = append(out, (first+float64(k))*step)
	}
	return out
}

// NiceStep rounds raw to 1, 2 or 5 times a power of ten.
func NiceStep(raw float64) float64 {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	exp := math.Floor(math.Log10(raw))
	pow := math.Pow(10, exp)
	switch f := raw / pow; {
	case f < 1.5:
		return pow
	case f < 3.5:
		return 2 * pow
	case f < 7.5:
		return 5 * pow
	default:
		return 10 * pow
	}
}

// TickLabel formats a grid coordinate with as many decimals as the step
// needs.
func TickLabel(v, step float64) string {
	dec := 0
	if step > 0 && step < 1 {
		dec = int(math.Ceil(-math.Log10(step)))
	}
	s := strconv.FormatFloat(v, 'f', dec, 64)
	if abs, ok := strings.CutPrefix(s, "-"); ok && strings.Trim(abs, "0.") == "" {
		return abs
	}
	return s
}
