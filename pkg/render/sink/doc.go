// Package sink provides output format renderers for composite figures.
//
// # Overview
//
// A "sink" transforms a computed [composite.Result] into a final output
// format. This package provides renderers for:
//
//   - SVG: Scalable vector graphics
//   - PNG: Raster image drawn natively with gogpu/gg
//   - PDF: Print-ready output (requires rsvg-convert)
//   - JSON: Totals, centroid and shape outlines for external tools
//   - GeoJSON: A FeatureCollection of shape polygons and the centroid
//
// # Canvas Output
//
// [RenderSVG], [RenderPNG] and [RenderPDF] draw the same scene: an equal-aspect
// plot with an optional background grid, filled shapes in translucent
// per-kind colours, holes painted over them in the background colour, and a
// black "X" at the composite centroid with a legend entry.
//
//	svg := sink.RenderSVG(res, sink.WithSize(1024, 768), sink.WithGrid(false))
//	png, err := sink.RenderPNG(res)
//	pdf, err := sink.RenderPDF(res)
//
// # Canvas Options
//
//   - [WithSize]: Canvas size in pixels (default 800×600)
//   - [WithGrid]: Background grid with tick labels (default on)
//   - [WithLegend]: Centroid legend (default on)
//   - [WithPalette]: Replace the colours ([styles.Default])
//
// # Data Output
//
// [RenderJSON] and [RenderGeoJSON] export the numbers rather than a picture.
// Both list filled shapes first and holes second, each in entry order.
// Circles become regular polygons in GeoJSON ([WithCircleSegments]).
//
// [composite.Result]: github.com/matzehuels/composite/pkg/composite.Result
// [styles.Default]: github.com/matzehuels/composite/pkg/render/styles.Default
package sink
