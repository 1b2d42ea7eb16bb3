// Package registry holds the shapes entered during one session.
//
// A [Registry] keeps two ordered, append-only collections: filled shapes and
// holes. Each session owns its own registry; there is no process-wide
// instance and a registry must not be shared between sessions.
//
// Records cannot be removed or edited once appended. This mirrors the
// interactive form, which offers no remove action, and is a known gap rather
// than a requirement.
package registry

import (
	"sync"

	"github.com/paulmach/orb"

	"github.com/matzehuels/composite/pkg/shape"
)

// Registry is an ordered collection of filled shapes and holes.
// The zero value is an empty registry ready to use. A registry is safe for
// concurrent use, so a computation may read it while shapes are entered.
type Registry struct {
	mu     sync.RWMutex
	filled []shape.Record
	holes  []shape.Record
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Append creates a record from the given parameters and appends it to the
// collection selected by role. It fails with INVALID_DIMENSION when any
// dimension is not strictly positive; the registry is unchanged on error.
func (r *Registry) Append(role shape.Role, dims shape.Dimensions, centroid orb.Point) (shape.Record, error) {
	rec, err := shape.New(role, dims, centroid)
	if err != nil {
		return shape.Record{}, err
	}
	r.add(rec)
	return rec, nil
}

// AppendSpec appends a parsed shape spec with the given role.
func (r *Registry) AppendSpec(role shape.Role, spec shape.Spec) (shape.Record, error) {
	return r.Append(role, spec.Dims, spec.Centroid)
}

func (r *Registry) add(rec shape.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.Role() == shape.Hole {
		r.holes = append(r.holes, rec)
		return
	}
	r.filled = append(r.filled, rec)
}

// Filled returns a copy of the filled shapes in insertion order.
func (r *Registry) Filled() []shape.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.filled)
}

// Holes returns a copy of the holes in insertion order.
func (r *Registry) Holes() []shape.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.holes)
}

// Snapshot is a point-in-time copy of a registry's contents.
type Snapshot struct {
	Filled []shape.Record
	Holes  []shape.Record
}

// Snapshot returns copies of both collections, taken together.
func (r *Registry) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Snapshot{Filled: clone(r.filled), Holes: clone(r.holes)}
}

// Len returns the total number of records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.filled) + len(r.holes)
}

// Empty reports whether nothing has been appended yet.
func (r *Registry) Empty() bool {
	return r.Len() == 0
}

func clone(recs []shape.Record) []shape.Record {
	if len(recs) == 0 {
		return nil
	}
	out := make([]shape.Record, len(recs))
	copy(out, recs)
	return out
}
