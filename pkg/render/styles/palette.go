package styles

import "github.com/matzehuels/composite/pkg/shape"

// Palette maps shape kinds and roles to paints.
type Palette struct {
	Background Color
	Rectangle  Color
	Triangle   Color
	Circle     Color
	Opacity    float64

	Grid     Color
	Axis     Color
	Centroid Color

	// MarkerSize is the centroid marker's half-width in pixels.
	MarkerSize float64
}

// Default returns the standard palette.
func Default() Palette {
	return Palette{
		Background: White,
		Rectangle:  LightBlue,
		Triangle:   LightGreen,
		Circle:     LightCoral,
		Opacity:    FillOpacity,
		Grid:       GridGray,
		Axis:       AxisGray,
		Centroid:   Black,
		MarkerSize: 7,
	}
}

// Paint returns the fill for an outline. Holes always use the background
// colour at full opacity, whatever their kind.
func (p Palette) Paint(kind shape.Kind, role shape.Role) Paint {
	if role == shape.Hole {
		return Paint{Fill: p.Background, Opacity: 1}
	}
	switch kind {
	case shape.Triangle:
		return Paint{Fill: p.Triangle, Opacity: p.Opacity}
	case shape.Circle:
		return Paint{Fill: p.Circle, Opacity: p.Opacity}
	default:
		return Paint{Fill: p.Rectangle, Opacity: p.Opacity}
	}
}
