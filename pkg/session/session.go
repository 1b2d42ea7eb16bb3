// Package session ties together the state of one interactive session.
//
// A [Session] owns its shape registry and its artifact cache. Nothing is
// shared between sessions and nothing is written to disk: closing the
// session (or exiting the process) discards every shape and cached render.
//
// # Usage
//
//	sess := session.New()
//	defer sess.Close()
//
//	if _, err := sess.Add(ctx, shape.Filled, shape.RectangleDims{Length: 4, Width: 2}, orb.Point{}); err != nil {
//	    // INVALID_DIMENSION: the registry is unchanged
//	}
//	runner := pipeline.NewRunner(sess.Cache, sess.Keyer(), logger)
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/matzehuels/composite/pkg/cache"
	"github.com/matzehuels/composite/pkg/observability"
	"github.com/matzehuels/composite/pkg/registry"
	"github.com/matzehuels/composite/pkg/shape"
)

// Session stores the shapes and render cache of one user session.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time
	Registry  *registry.Registry
	Cache     cache.Cache
}

// New creates a session with a fresh ID, an empty registry and an in-memory
// artifact cache.
func New() *Session {
	return &Session{
		ID:        uuid.New(),
		StartedAt: time.Now(),
		Registry:  registry.New(),
		Cache:     cache.NewMemoryCache(),
	}
}

// ShortID returns the first eight hex digits of the ID, used in log fields
// and cache keys.
func (s *Session) ShortID() string {
	return s.ID.String()[:8]
}

// Keyer returns a cache keyer namespaced to this session.
func (s *Session) Keyer() cache.Keyer {
	return cache.NewScopedKeyer(nil, "session:"+s.ShortID()+":")
}

// Add validates a shape and appends it to the registry. Accepted and rejected
// shapes are reported to the registered [observability.ShapeHooks].
func (s *Session) Add(ctx context.Context, role shape.Role, dims shape.Dimensions, centroid orb.Point) (shape.Record, error) {
	kind := ""
	if dims != nil {
		kind = dims.Kind().String()
	}

	rec, err := s.Registry.Append(role, dims, centroid)
	if err != nil {
		observability.Shape().OnShapeRejected(ctx, role.String(), kind, err)
		return shape.Record{}, err
	}
	observability.Shape().OnShapeAdded(ctx, role.String(), kind, rec.Area())
	return rec, nil
}

// AddSpec appends a parsed shape spec with the given role.
func (s *Session) AddSpec(ctx context.Context, role shape.Role, spec shape.Spec) (shape.Record, error) {
	return s.Add(ctx, role, spec.Dims, spec.Centroid)
}

// Close releases the artifact cache. The registry stays readable.
func (s *Session) Close() error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.Close()
}
