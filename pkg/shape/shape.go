package shape

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"

	"github.com/matzehuels/composite/pkg/errors"
)

// Kind identifies a primitive shape.
type Kind int

const (
	Rectangle Kind = iota + 1
	Triangle
	Circle
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{Rectangle, Triangle, Circle}

// String returns the display name of the kind ("Rectangle", ...).
func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "Rectangle"
	case Triangle:
		return "Triangle"
	case Circle:
		return "Circle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a kind name to a Kind. Matching is case-insensitive and
// accepts the short forms "rect", "tri" and "circ".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rectangle", "rect":
		return Rectangle, nil
	case "triangle", "tri":
		return Triangle, nil
	case "circle", "circ":
		return Circle, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidKind, "unknown shape kind %q (must be rectangle, triangle or circle)", s)
	}
}

// Role determines the sign with which a shape contributes to the composite.
type Role int

const (
	Filled Role = iota
	Hole
)

// String returns "filled" or "hole".
func (r Role) String() string {
	if r == Hole {
		return "hole"
	}
	return "filled"
}

// Sign returns +1 for filled shapes and -1 for holes.
func (r Role) Sign() float64 {
	if r == Hole {
		return -1
	}
	return 1
}

// Dimensions is the kind-specific size of a shape. The set of
// implementations is closed: RectangleDims, TriangleDims and CircleDims.
type Dimensions interface {
	// Kind reports which shape the dimensions describe.
	Kind() Kind
	// Values returns the dimensions in their canonical order.
	Values() []float64

	dimensions()
}

// RectangleDims sizes a rectangle. Length runs along x, width along y.
type RectangleDims struct {
	Length float64
	Width  float64
}

// TriangleDims sizes a triangle. Base runs along x, height along y.
type TriangleDims struct {
	Base   float64
	Height float64
}

// CircleDims sizes a circle.
type CircleDims struct {
	Radius float64
}

func (RectangleDims) Kind() Kind { return Rectangle }
func (TriangleDims) Kind() Kind  { return Triangle }
func (CircleDims) Kind() Kind    { return Circle }

func (d RectangleDims) Values() []float64 { return []float64{d.Length, d.Width} }
func (d TriangleDims) Values() []float64  { return []float64{d.Base, d.Height} }
func (d CircleDims) Values() []float64    { return []float64{d.Radius} }

func (RectangleDims) dimensions() {}
func (TriangleDims) dimensions()  {}
func (CircleDims) dimensions()    {}

// Input defaults for newly entered shapes.
const (
	DefaultSide   = 2.0
	DefaultRadius = 1.0
)

// DefaultDimensions returns the dimensions a new shape of the given kind
// starts with: 2×2 for rectangles and triangles, radius 1 for circles.
func DefaultDimensions(k Kind) Dimensions {
	switch k {
	case Triangle:
		return TriangleDims{Base: DefaultSide, Height: DefaultSide}
	case Circle:
		return CircleDims{Radius: DefaultRadius}
	default:
		return RectangleDims{Length: DefaultSide, Width: DefaultSide}
	}
}

// DimensionNames returns the labels of the dimensions of a kind, in the same
// order as Dimensions.Values.
func DimensionNames(k Kind) []string {
	switch k {
	case Rectangle:
		return []string{"length", "width"}
	case Triangle:
		return []string{"base", "height"}
	case Circle:
		return []string{"radius"}
	default:
		return nil
	}
}

// NewDimensions builds the dimensions of a kind from positional values.
// The number of values must match the kind.
func NewDimensions(k Kind, values ...float64) (Dimensions, error) {
	names := DimensionNames(k)
	if names == nil {
		return nil, errors.New(errors.ErrCodeInvalidKind, "unknown shape kind %v", k)
	}
	if len(values) != len(names) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s takes %d dimension(s) (%s), got %d",
			strings.ToLower(k.String()), len(names), strings.Join(names, ", "), len(values))
	}
	switch k {
	case Rectangle:
		return RectangleDims{Length: values[0], Width: values[1]}, nil
	case Triangle:
		return TriangleDims{Base: values[0], Height: values[1]}, nil
	default:
		return CircleDims{Radius: values[0]}, nil
	}
}

// Record is a single shape of a composite figure. Records are values: they
// are created once by New and never modified.
type Record struct {
	role     Role
	dims     Dimensions
	centroid orb.Point
	area     float64
}

// New validates the dimensions and centroid and returns a record with its
// area computed. Every dimension must be finite and strictly positive, and so
// must the resulting area.
func New(role Role, dims Dimensions, centroid orb.Point) (Record, error) {
	if dims == nil {
		return Record{}, errors.New(errors.ErrCodeInvalidInput, "dimensions are required")
	}
	names := DimensionNames(dims.Kind())
	for i, v := range dims.Values() {
		if err := errors.ValidateDimension(names[i], v); err != nil {
			return Record{}, err
		}
	}
	if err := errors.ValidateCoordinate("centroid x", centroid.X()); err != nil {
		return Record{}, err
	}
	if err := errors.ValidateCoordinate("centroid y", centroid.Y()); err != nil {
		return Record{}, err
	}

	a := area(dims)
	if math.IsInf(a, 0) || a == 0 {
		return Record{}, errors.New(errors.ErrCodeInvalidDimension,
			"%s area is out of range (dimensions %v)", strings.ToLower(dims.Kind().String()), dims.Values())
	}

	return Record{
		role:     role,
		dims:     dims,
		centroid: centroid,
		area:     a,
	}, nil
}

func area(dims Dimensions) float64 {
	switch d := dims.(type) {
	case RectangleDims:
		return d.Length * d.Width
	case TriangleDims:
		return 0.5 * d.Base * d.Height
	case CircleDims:
		return math.Pi * d.Radius * d.Radius
	default:
		return 0
	}
}

// Kind returns the shape kind.
func (r Record) Kind() Kind {
	if r.dims == nil {
		return 0
	}
	return r.dims.Kind()
}

// Role returns whether the record is filled or a hole.
func (r Record) Role() Role { return r.role }

// Dimensions returns the kind-specific dimensions.
func (r Record) Dimensions() Dimensions { return r.dims }

// Centroid returns the point the shape is centred on.
func (r Record) Centroid() orb.Point { return r.centroid }

// Area returns the (non-negative) area cached at creation.
func (r Record) Area() float64 { return r.area }

// String describes the record the way the shape listing prints it, e.g.
// "Rectangle centered at (0.00, 0.00) with area 8.00".
func (r Record) String() string {
	name := r.Kind().String()
	if r.role == Hole {
		name += " hole"
	}
	return fmt.Sprintf("%s centered at (%.2f, %.2f) with area %.2f",
		name, r.centroid.X(), r.centroid.Y(), r.area)
}
