package registry

import (
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/shape"
)

func TestAppendKeepsRolesApart(t *testing.T) {
	r := New()
	require.True(t, r.Empty())

	_, err := r.Append(shape.Filled, shape.RectangleDims{Length: 4, Width: 2}, orb.Point{0, 0})
	require.NoError(t, err)
	_, err = r.Append(shape.Hole, shape.RectangleDims{Length: 2, Width: 2}, orb.Point{0, 0})
	require.NoError(t, err)
	_, err = r.Append(shape.Filled, shape.CircleDims{Radius: 1}, orb.Point{5, 0})
	require.NoError(t, err)

	filled := r.Filled()
	holes := r.Holes()
	require.Len(t, filled, 2)
	require.Len(t, holes, 1)
	assert.Equal(t, 3, r.Len())
	assert.False(t, r.Empty())

	assert.Equal(t, shape.Rectangle, filled[0].Kind())
	assert.Equal(t, shape.Circle, filled[1].Kind())
	assert.Equal(t, shape.Hole, holes[0].Role())
	assert.InDelta(t, 4.0, holes[0].Area(), 1e-12)
}

func TestAppendRejectsInvalidDimension(t *testing.T) {
	r := New()
	_, err := r.Append(shape.Filled, shape.CircleDims{Radius: 0}, orb.Point{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidDimension))
	assert.True(t, r.Empty(), "failed append must not modify the registry")
}

func TestSnapshotsAreCopies(t *testing.T) {
	r := New()
	_, err := r.Append(shape.Filled, shape.TriangleDims{Base: 3, Height: 3}, orb.Point{1, 1})
	require.NoError(t, err)

	snap := r.Snapshot()
	snap.Filled[0] = shape.Record{}
	snap.Filled = append(snap.Filled, shape.Record{})

	filled := r.Filled()
	require.Len(t, filled, 1)
	assert.Equal(t, shape.Triangle, filled[0].Kind())
}

func TestAppendSpec(t *testing.T) {
	r := New()
	spec, err := shape.Parse("circle:1@5,0")
	require.NoError(t, err)

	rec, err := r.AppendSpec(shape.Hole, spec)
	require.NoError(t, err)
	assert.Equal(t, shape.Hole, rec.Role())
	assert.Len(t, r.Holes(), 1)
	assert.Empty(t, r.Filled())
}

func TestRegistriesAreIsolated(t *testing.T) {
	a, b := New(), New()
	_, err := a.Append(shape.Filled, shape.CircleDims{Radius: 1}, orb.Point{})
	require.NoError(t, err)

	assert.Equal(t, 1, a.Len())
	assert.True(t, b.Empty())
}

func TestConcurrentAppendAndSnapshot(t *testing.T) {
	r := New()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			role := shape.Filled
			if i%2 == 1 {
				role = shape.Hole
			}
			_, err := r.Append(role, shape.CircleDims{Radius: 1}, orb.Point{float64(i), 0})
			assert.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			snap := r.Snapshot()
			assert.LessOrEqual(t, len(snap.Filled)+len(snap.Holes), 8)
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, r.Len())
	assert.Len(t, r.Filled(), 4)
	assert.Len(t, r.Holes(), 4)
}
