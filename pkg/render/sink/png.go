package sink

import (
	"bytes"
	"fmt"

	"github.com/gogpu/gg"

	"github.com/matzehuels/composite/pkg/composite"
	"github.com/matzehuels/composite/pkg/fonts"
	"github.com/matzehuels/composite/pkg/render"
	"github.com/matzehuels/composite/pkg/render/styles"
	"github.com/matzehuels/composite/pkg/shape"
)

// RenderPNG rasterizes the figure with the gg software renderer. It draws the
// same scene as [RenderSVG] and needs no external tools.
func RenderPNG(res composite.Result, opts ...Option) ([]byte, error) {
	f := newFrame(opts...)
	vp := f.viewport(res)
	p := f.palette

	dc := gg.NewContext(int(f.width), int(f.height))
	defer dc.Close()
	dc.ClearWithColor(rgba(p.Background, 1))

	if f.grid {
		if err := drawPNGGrid(dc, vp, p); err != nil {
			return nil, err
		}
	}
	for _, part := range res.Parts {
		if err := drawPNGPart(dc, vp, p, part); err != nil {
			return nil, err
		}
	}
	if err := drawPNGMarker(dc, vp, p, res); err != nil {
		return nil, err
	}

	setColor(dc, p.Axis, 1)
	dc.SetLineWidth(1)
	dc.DrawRectangle(vp.Margin, vp.Margin, f.width-2*vp.Margin, f.height-2*vp.Margin)
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("stroke frame: %w", err)
	}

	if f.legend {
		if err := drawPNGLegend(dc, f, vp); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPNGGrid(dc *gg.Context, vp render.Viewport, p styles.Palette) error {
	g := vp.Grid()
	top, bottom := vp.Margin, vp.Height-vp.Margin
	left, right := vp.Margin, vp.Width-vp.Margin

	setColor(dc, p.Grid, 1)
	dc.SetLineWidth(0.8)
	for _, x := range g.X {
		cx, _ := vp.Point(pt(x, 0))
		dc.DrawLine(cx, top, cx, bottom)
	}
	for _, y := range g.Y {
		_, cy := vp.Point(pt(0, y))
		dc.DrawLine(left, cy, right, cy)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke grid: %w", err)
	}

	face, err := fonts.Face(tickFontSize)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	dc.SetFont(face)
	setColor(dc, p.Axis, 1)
	for _, x := range g.X {
		cx, _ := vp.Point(pt(x, 0))
		dc.DrawStringAnchored(render.TickLabel(x, g.Step), cx, bottom+4, 0.5, 1)
	}
	for _, y := range g.Y {
		_, cy := vp.Point(pt(0, y))
		dc.DrawStringAnchored(render.TickLabel(y, g.Step), left-4, cy, 1, 0.5)
	}
	return nil
}

func drawPNGPart(dc *gg.Context, vp render.Viewport, p styles.Palette, part composite.Part) error {
	o := part.Outline
	paint := p.Paint(o.Kind, o.Role)
	setColor(dc, paint.Fill, paint.Opacity)

	if o.Kind == shape.Circle {
		cx, cy := vp.Point(o.Center)
		dc.DrawCircle(cx, cy, vp.Length(o.Radius))
	} else {
		for i, v := range o.Vertices {
			x, y := vp.Point(v)
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
	}
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill %s %d: %w", part.Role(), part.Index, err)
	}
	return nil
}

func drawPNGMarker(dc *gg.Context, vp render.Viewport, p styles.Palette, res composite.Result) error {
	x, y := vp.Point(res.Centroid)
	drawCross(dc, x, y, p.MarkerSize)
	setColor(dc, p.Centroid, 1)
	dc.SetLineWidth(3)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke centroid: %w", err)
	}
	return nil
}

func drawPNGLegend(dc *gg.Context, f frame, vp render.Viewport) error {
	p := f.palette
	x, y, w, h := f.legendBox(vp)

	setColor(dc, p.Background, 0.85)
	dc.DrawRectangle(x, y, w, h)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill legend: %w", err)
	}
	setColor(dc, p.Grid, 1)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x, y, w, h)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke legend: %w", err)
	}

	mx, my := x+legendPad+p.MarkerSize, y+h/2
	drawCross(dc, mx, my, p.MarkerSize*0.7)
	setColor(dc, p.Centroid, 1)
	dc.SetLineWidth(2.5)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke legend marker: %w", err)
	}

	face, err := fonts.Face(legendFontSize)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	dc.SetFont(face)
	setColor(dc, p.Axis, 1)
	dc.DrawStringAnchored(styles.CentroidLabel, mx+p.MarkerSize+legendPad, my, 0, 0.5)
	return nil
}

func drawCross(dc *gg.Context, x, y, s float64) {
	dc.MoveTo(x-s, y-s)
	dc.LineTo(x+s, y+s)
	dc.MoveTo(x-s, y+s)
	dc.LineTo(x+s, y-s)
}

func setColor(dc *gg.Context, c styles.Color, alpha float64) {
	r, g, b := c.Floats()
	dc.SetRGBA(r, g, b, alpha)
}

func rgba(c styles.Color, alpha float64) gg.RGBA {
	r, g, b := c.Floats()
	return gg.RGBA2(r, g, b, alpha)
}
