package sink

import (
	"github.com/paulmach/orb"

	"github.com/matzehuels/composite/pkg/composite"
	"github.com/matzehuels/composite/pkg/render"
	"github.com/matzehuels/composite/pkg/render/styles"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

const (
	tickFontSize   = 11.0
	legendFontSize = 13.0
	legendPad      = 8.0
)

// Option configures the canvas sinks ([RenderSVG], [RenderPNG], [RenderPDF]).
type Option func(*frame)

type frame struct {
	width, height float64
	grid          bool
	legend        bool
	palette       styles.Palette
}

// WithSize sets the canvas size in pixels. Non-positive values keep the
// default.
func WithSize(width, height int) Option {
	return func(f *frame) {
		if width > 0 {
			f.width = float64(width)
		}
		if height > 0 {
			f.height = float64(height)
		}
	}
}

// WithGrid toggles the background grid (on by default).
func WithGrid(on bool) Option { return func(f *frame) { f.grid = on } }

// WithLegend toggles the centroid legend (on by default).
func WithLegend(on bool) Option { return func(f *frame) { f.legend = on } }

// WithPalette replaces the default colours.
func WithPalette(p styles.Palette) Option { return func(f *frame) { f.palette = p } }

func newFrame(opts ...Option) frame {
	f := frame{
		width:   DefaultWidth,
		height:  DefaultHeight,
		grid:    true,
		legend:  true,
		palette: styles.Default(),
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func (f frame) viewport(res composite.Result) render.Viewport {
	return render.NewViewport(res.Bound(), f.width, f.height, render.DefaultMargin)
}

// legendBox returns the canvas rectangle of the legend in the upper-right
// corner of the plot area.
func (f frame) legendBox(vp render.Viewport) (x, y, w, h float64) {
	w = legendPad*3 + 2*f.palette.MarkerSize + float64(len(styles.CentroidLabel))*legendFontSize*0.55
	h = legendPad*2 + legendFontSize
	x = f.width - vp.Margin - w - legendPad
	y = vp.Margin + legendPad
	return x, y, w, h
}

func pt(x, y float64) orb.Point { return orb.Point{x, y} }
