// Package shape defines the primitive shapes a composite figure is built
// from.
//
// # Overview
//
// A [Record] is an immutable value describing one primitive: its [Kind]
// (rectangle, triangle or circle), kind-specific [Dimensions], the point the
// shape is physically centred on, and its [Role] in the figure ([Filled] or
// [Hole]). The area is computed once when the record is created and cached.
//
// Dimensions form a closed set of variants:
//
//   - [RectangleDims]: length (horizontal) and width (vertical)
//   - [TriangleDims]: base (horizontal) and height (vertical)
//   - [CircleDims]: radius
//
// Records are created with [New], which rejects non-positive dimensions with
// an INVALID_DIMENSION error:
//
//	rec, err := shape.New(shape.Filled, shape.RectangleDims{Length: 4, Width: 2}, orb.Point{0, 0})
//	rec.Area() // 8
//
// # Outlines
//
// [Record.Outline] derives the placement used for rendering. The placement is
// anchored on the record's centroid rather than on a separately specified
// origin:
//
//   - Rectangle: axis-aligned box centred on the centroid
//   - Triangle: right triangle whose vertex mean is the centroid
//   - Circle: centred on the centroid
//
// # Notation
//
// [Parse] reads the compact notation used by command-line flags and figure
// files:
//
//	rect:4x2@0,0     rectangle 4 long, 2 wide, centred at the origin
//	tri:3x1.5@1,1    triangle with base 3 and height 1.5
//	circle:1@5,0     unit circle centred at (5, 0)
//	circle           defaults: radius 1 at the origin
package shape
