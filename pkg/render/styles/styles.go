// Package styles defines the colours used to draw composite figures.
//
// The default palette follows the usual plotting conventions: filled
// rectangles are light blue, triangles light green and circles light coral,
// all drawn at 70% opacity so overlaps remain visible. Holes are painted in
// the background colour at full opacity, which visually removes them from
// whatever they overlap. The composite centroid is a black "X" marker with a
// legend entry.
package styles

import "fmt"

// CentroidLabel is the legend text for the centroid marker.
const CentroidLabel = "Composite Centroid"

// FillOpacity is the opacity of filled shapes.
const FillOpacity = 0.7

// Color is an 8-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Floats returns the channels scaled to [0, 1].
func (c Color) Floats() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// Named colours (CSS names).
var (
	White      = Color{255, 255, 255}
	Black      = Color{0, 0, 0}
	LightBlue  = Color{173, 216, 230}
	LightGreen = Color{144, 238, 144}
	LightCoral = Color{240, 128, 128}
	GridGray   = Color{176, 176, 176}
	AxisGray   = Color{68, 68, 68}
)

// Paint is how one outline is filled.
type Paint struct {
	Fill    Color
	Opacity float64
}
