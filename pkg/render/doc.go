// Package render provides the geometry shared by every figure output format.
//
// # Viewport
//
// A [Viewport] fits the bounding box of a composite figure into a canvas of
// fixed pixel size. Both axes use the same scale, so circles stay round, and
// the y axis is flipped so that figure coordinates grow upward as on a
// plotting axis:
//
//	vp := render.NewViewport(result.Bound(), 800, 600, render.DefaultMargin)
//	x, y := vp.Point(result.Centroid)
//
// [Viewport.Grid] returns background grid lines at a "nice" step (1, 2 or 5
// times a power of ten) and [TickLabel] formats their coordinates.
//
// # Format Conversion
//
// [ToPDF] converts SVG to PDF with the external rsvg-convert tool (from
// librsvg). When the tool is missing it fails with an UNSUPPORTED error so
// callers can report a clear install hint.
//
// Output formats themselves live in the [sink] subpackage and the colour
// palette in [styles].
//
// [sink]: github.com/matzehuels/composite/pkg/render/sink
// [styles]: github.com/matzehuels/composite/pkg/render/styles
package render
