package shape

import (
	"math"

	"github.com/paulmach/orb"
)

// DefaultCircleSegments is the number of polygon sides used when a circle
// outline is flattened into a ring.
const DefaultCircleSegments = 64

// Outline is the renderable placement of a record in figure coordinates
// (y axis pointing up).
//
// Rectangles and triangles carry their corners in Vertices
// (counter-clockwise, not closed). Circles carry Center and Radius and leave
// Vertices empty.
type Outline struct {
	Kind     Kind
	Role     Role
	Vertices []orb.Point
	Center   orb.Point
	Radius   float64
}

// Outline derives the record's placement from its centroid.
//
// Rectangle: lower-left corner at centroid - (length/2, width/2).
// Triangle: v0 = centroid - (base/3, height/3), v1 = v0 + (base, 0),
// v2 = v0 + (0, height). The drawing is a right triangle with its right angle
// at v0, so the mean of its three vertices equals the centroid.
// Circle: centred on the centroid.
func (r Record) Outline() Outline {
	c := r.centroid
	o := Outline{Kind: r.Kind(), Role: r.role, Center: c}

	switch d := r.dims.(type) {
	case RectangleDims:
		x0, y0 := c.X()-d.Length/2, c.Y()-d.Width/2
		o.Vertices = []orb.Point{
			{x0, y0},
			{x0 + d.Length, y0},
			{x0 + d.Length, y0 + d.Width},
			{x0, y0 + d.Width},
		}
	case TriangleDims:
		x0, y0 := c.X()-d.Base/3, c.Y()-d.Height/3
		o.Vertices = []orb.Point{
			{x0, y0},
			{x0 + d.Base, y0},
			{x0, y0 + d.Height},
		}
	case CircleDims:
		o.Radius = d.Radius
	}
	return o
}

// Bound returns the axis-aligned bounding box of the outline.
func (o Outline) Bound() orb.Bound {
	if o.Kind == Circle {
		return orb.Bound{
			Min: orb.Point{o.Center.X() - o.Radius, o.Center.Y() - o.Radius},
			Max: orb.Point{o.Center.X() + o.Radius, o.Center.Y() + o.Radius},
		}
	}
	if len(o.Vertices) == 0 {
		return orb.Bound{Min: o.Center, Max: o.Center}
	}
	b := orb.Bound{Min: o.Vertices[0], Max: o.Vertices[0]}
	for _, v := range o.Vertices[1:] {
		b = b.Extend(v)
	}
	return b
}

// Ring returns the outline as a closed, counter-clockwise ring. Circles are
// approximated by a regular polygon with the given number of segments
// (DefaultCircleSegments when segments < 3).
func (o Outline) Ring(segments int) orb.Ring {
	if o.Kind != Circle {
		ring := make(orb.Ring, 0, len(o.Vertices)+1)
		ring = append(ring, o.Vertices...)
		if len(o.Vertices) > 0 {
			ring = append(ring, o.Vertices[0])
		}
		return ring
	}

	if segments < 3 {
		segments = DefaultCircleSegments
	}
	ring := make(orb.Ring, 0, segments+1)
	for i := 0; i < segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		ring = append(ring, orb.Point{
			o.Center.X() + o.Radius*math.Cos(theta),
			o.Center.Y() + o.Radius*math.Sin(theta),
		})
	}
	return append(ring, ring[0])
}

// VertexMean returns the arithmetic mean of the outline's vertices, or the
// centre for circles.
func (o Outline) VertexMean() orb.Point {
	if len(o.Vertices) == 0 {
		return o.Center
	}
	var sx, sy float64
	for _, v := range o.Vertices {
		sx += v.X()
		sy += v.Y()
	}
	n := float64(len(o.Vertices))
	return orb.Point{sx / n, sy / n}
}
