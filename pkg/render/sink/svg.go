package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/composite/pkg/composite"
	"github.com/matzehuels/composite/pkg/fonts"
	"github.com/matzehuels/composite/pkg/render"
	"github.com/matzehuels/composite/pkg/render/styles"
	"github.com/matzehuels/composite/pkg/shape"
)

// RenderSVG draws the figure as SVG: grid, filled shapes, holes painted over
// them in the background colour, the centroid marker and its legend.
func RenderSVG(res composite.Result, opts ...Option) []byte {
	f := newFrame(opts...)
	vp := f.viewport(res)
	p := f.palette

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		f.width, f.height, f.width, f.height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", p.Background.Hex())

	if f.grid {
		renderSVGGrid(&buf, vp, p)
	}

	buf.WriteString(`  <g class="shapes">` + "\n")
	for _, part := range res.Parts {
		renderSVGPart(&buf, vp, p, part)
	}
	buf.WriteString("  </g>\n")

	renderSVGMarker(&buf, vp, p, res)

	fmt.Fprintf(&buf, `  <rect class="frame" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s"/>`+"\n",
		vp.Margin, vp.Margin, f.width-2*vp.Margin, f.height-2*vp.Margin, p.Axis.Hex())

	if f.legend {
		renderSVGLegend(&buf, f, vp)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSVGGrid(buf *bytes.Buffer, vp render.Viewport, p styles.Palette) {
	g := vp.Grid()
	top, bottom := vp.Margin, vp.Height-vp.Margin
	left, right := vp.Margin, vp.Width-vp.Margin

	fmt.Fprintf(buf, `  <g class="grid" stroke="%s" stroke-width="0.8">`+"\n", p.Grid.Hex())
	for _, x := range g.X {
		cx, _ := vp.Point(pt(x, 0))
		fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", cx, top, cx, bottom)
	}
	for _, y := range g.Y {
		_, cy := vp.Point(pt(0, y))
		fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n", left, cy, right, cy)
	}
	buf.WriteString("  </g>\n")

	fmt.Fprintf(buf, `  <g class="ticks" font-family="%s" font-size="%.0f" fill="%s">`+"\n",
		fonts.FontFamily, tickFontSize, p.Axis.Hex())
	for _, x := range g.X {
		cx, _ := vp.Point(pt(x, 0))
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="middle">%s</text>`+"\n",
			cx, bottom+tickFontSize+4, render.TickLabel(x, g.Step))
	}
	for _, y := range g.Y {
		_, cy := vp.Point(pt(0, y))
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="end" dominant-baseline="middle">%s</text>`+"\n",
			left-4, cy, render.TickLabel(y, g.Step))
	}
	buf.WriteString("  </g>\n")
}

func renderSVGPart(buf *bytes.Buffer, vp render.Viewport, p styles.Palette, part composite.Part) {
	o := part.Outline
	paint := p.Paint(o.Kind, o.Role)
	id := fmt.Sprintf("%s-%d", part.Role(), part.Index)
	class := fmt.Sprintf("shape %s %s", part.Role(), strings.ToLower(o.Kind.String()))

	if o.Kind == shape.Circle {
		cx, cy := vp.Point(o.Center)
		fmt.Fprintf(buf, `    <circle id="%s" class="%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%.2f"/>`+"\n",
			id, class, cx, cy, vp.Length(o.Radius), paint.Fill.Hex(), paint.Opacity)
		return
	}

	points := make([]string, len(o.Vertices))
	for i, v := range o.Vertices {
		x, y := vp.Point(v)
		points[i] = fmt.Sprintf("%.2f,%.2f", x, y)
	}
	fmt.Fprintf(buf, `    <polygon id="%s" class="%s" points="%s" fill="%s" fill-opacity="%.2f"/>`+"\n",
		id, class, strings.Join(points, " "), paint.Fill.Hex(), paint.Opacity)
}

func renderSVGMarker(buf *bytes.Buffer, vp render.Viewport, p styles.Palette, res composite.Result) {
	x, y := vp.Point(res.Centroid)
	fmt.Fprintf(buf, `  <path class="centroid" d="%s" stroke="%s" stroke-width="3" stroke-linecap="round"/>`+"\n",
		markerPath(x, y, p.MarkerSize), p.Centroid.Hex())
}

func markerPath(x, y, s float64) string {
	return fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f M%.2f,%.2f L%.2f,%.2f",
		x-s, y-s, x+s, y+s, x-s, y+s, x+s, y-s)
}

func renderSVGLegend(buf *bytes.Buffer, f frame, vp render.Viewport) {
	p := f.palette
	x, y, w, h := f.legendBox(vp)
	mx, my := x+legendPad+p.MarkerSize, y+h/2

	buf.WriteString(`  <g class="legend">` + "\n")
	fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="3" fill="%s" fill-opacity="0.85" stroke="%s"/>`+"\n",
		x, y, w, h, p.Background.Hex(), p.Grid.Hex())
	fmt.Fprintf(buf, `    <path d="%s" stroke="%s" stroke-width="2.5" stroke-linecap="round"/>`+"\n",
		markerPath(mx, my, p.MarkerSize*0.7), p.Centroid.Hex())
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-family="%s" font-size="%.0f" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
		mx+p.MarkerSize+legendPad, my, fonts.FontFamily, legendFontSize, p.Axis.Hex(), styles.CentroidLabel)
	buf.WriteString("  </g>\n")
}
