// Package composite computes the centroid and signed area of a composite
// figure.
//
// # Algorithm
//
// The figure is modelled as filled regions of positive area density with
// holes superposed as regions of equal and opposite density at their own
// centroids (the composite-body theorem):
//
//	A  = Σ aᵢ        - Σ hⱼ
//	Mx = Σ aᵢ·xᵢ     - Σ hⱼ·xⱼ
//	My = Σ aᵢ·yᵢ     - Σ hⱼ·yⱼ
//	centroid = (Mx / A, My / A)
//
// The sums are linear, so the result does not depend on the order in which
// shapes were entered (up to floating-point rounding).
//
// This is only physically meaningful when every hole lies inside the filled
// region. Containment is not checked: a hole placed outside all filled shapes
// still subtracts its full area.
//
// # Usage
//
//	res, err := composite.FromRegistry(reg)
//	if errors.Is(err, errors.ErrCodeDegenerateComposite) {
//	    // total area is zero: nothing entered, or holes cancel the fill
//	}
//	fmt.Printf("(%.2f, %.2f)\n", res.Centroid.X(), res.Centroid.Y())
package composite

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/registry"
	"github.com/matzehuels/composite/pkg/shape"
)

// Result is the outcome of a composite computation. It is derived from the
// registry contents at the time of the call and is never cached.
type Result struct {
	// TotalArea is the filled area minus the hole area.
	TotalArea float64
	// MomentX and MomentY are the first moments of area, Σ±a·x and Σ±a·y.
	MomentX float64
	MomentY float64
	// Centroid is (MomentX, MomentY) / TotalArea.
	Centroid orb.Point
	// Parts holds one renderable entry per record: filled shapes first, then
	// holes, each in registry order.
	Parts []Part
}

// Part is one record of the figure with its derived outline.
type Part struct {
	// Index is the 1-based position of the record within its role.
	Index   int
	Record  shape.Record
	Outline shape.Outline
}

// Role returns the role the part contributes with.
func (p Part) Role() shape.Role { return p.Outline.Role }

// Compute applies the composite-body theorem to the given shapes.
// Records in filled contribute positively and records in holes negatively,
// whatever role they carry.
//
// It fails with DEGENERATE_COMPOSITE when the total signed area is exactly
// zero, which covers both an empty figure and holes that exactly cancel the
// filled area. No partial result is returned in that case.
func Compute(filled, holes []shape.Record) (Result, error) {
	var area, mx, my float64

	for _, rec := range filled {
		a, c := rec.Area(), rec.Centroid()
		area += a
		mx += a * c.X()
		my += a * c.Y()
	}
	for _, rec := range holes {
		a, c := rec.Area(), rec.Centroid()
		area -= a
		mx -= a * c.X()
		my -= a * c.Y()
	}

	if area == 0 {
		return Result{}, errors.New(errors.ErrCodeDegenerateComposite,
			"Total area is zero; check input shapes and holes.")
	}
	if !finite(area) || !finite(mx) || !finite(my) {
		return Result{}, errors.New(errors.ErrCodeInvalidInput,
			"figure is out of range: total area or moments overflow")
	}

	res := Result{
		TotalArea: area,
		MomentX:   mx,
		MomentY:   my,
		Centroid:  orb.Point{mx / area, my / area},
		Parts:     make([]Part, 0, len(filled)+len(holes)),
	}
	res.Parts = appendParts(res.Parts, filled, shape.Filled)
	res.Parts = appendParts(res.Parts, holes, shape.Hole)
	return res, nil
}

func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// FromRegistry computes the composite of the registry's current contents.
func FromRegistry(r *registry.Registry) (Result, error) {
	snap := r.Snapshot()
	return Compute(snap.Filled, snap.Holes)
}

func appendParts(parts []Part, recs []shape.Record, role shape.Role) []Part {
	for i, rec := range recs {
		o := rec.Outline()
		o.Role = role
		parts = append(parts, Part{Index: i + 1, Record: rec, Outline: o})
	}
	return parts
}

// Bound returns the bounding box of every outline together with the
// centroid.
func (r Result) Bound() orb.Bound {
	b := orb.Bound{Min: r.Centroid, Max: r.Centroid}
	for _, p := range r.Parts {
		b = b.Union(p.Outline.Bound())
	}
	return b
}

// Filled returns the parts contributed by filled shapes.
func (r Result) Filled() []Part { return r.byRole(shape.Filled) }

// Holes returns the parts contributed by holes.
func (r Result) Holes() []Part { return r.byRole(shape.Hole) }

func (r Result) byRole(role shape.Role) []Part {
	var out []Part
	for _, p := range r.Parts {
		if p.Role() == role {
			out = append(out, p)
		}
	}
	return out
}
