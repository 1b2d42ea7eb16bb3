package shape

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/composite/pkg/errors"
)

const tol = 1e-9

func TestNewArea(t *testing.T) {
	tests := []struct {
		name string
		dims Dimensions
		want float64
	}{
		{"rectangle", RectangleDims{Length: 4, Width: 2}, 8},
		{"square default", DefaultDimensions(Rectangle), 4},
		{"triangle", TriangleDims{Base: 3, Height: 4}, 6},
		{"triangle default", DefaultDimensions(Triangle), 2},
		{"circle", CircleDims{Radius: 2}, 4 * math.Pi},
		{"unit circle", DefaultDimensions(Circle), math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := New(Filled, tt.dims, orb.Point{1, -1})
			require.NoError(t, err)
			assert.InDelta(t, tt.want, rec.Area(), tol)
			assert.Equal(t, tt.dims.Kind(), rec.Kind())
			assert.Equal(t, orb.Point{1, -1}, rec.Centroid())
		})
	}
}

func TestNewRoleDoesNotChangeArea(t *testing.T) {
	dims := CircleDims{Radius: 1.5}
	filled, err := New(Filled, dims, orb.Point{})
	require.NoError(t, err)
	hole, err := New(Hole, dims, orb.Point{})
	require.NoError(t, err)

	assert.Equal(t, filled.Area(), hole.Area())
	assert.GreaterOrEqual(t, hole.Area(), 0.0)
	assert.Equal(t, Hole, hole.Role())
	assert.Equal(t, -1.0, hole.Role().Sign())
	assert.Equal(t, 1.0, filled.Role().Sign())
}

func TestNewRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		dims     Dimensions
		centroid orb.Point
		code     errors.Code
	}{
		{"zero length", RectangleDims{Length: 0, Width: 1}, orb.Point{}, errors.ErrCodeInvalidDimension},
		{"negative width", RectangleDims{Length: 1, Width: -2}, orb.Point{}, errors.ErrCodeInvalidDimension},
		{"zero height", TriangleDims{Base: 1, Height: 0}, orb.Point{}, errors.ErrCodeInvalidDimension},
		{"negative radius", CircleDims{Radius: -1}, orb.Point{}, errors.ErrCodeInvalidDimension},
		{"NaN radius", CircleDims{Radius: math.NaN()}, orb.Point{}, errors.ErrCodeInvalidDimension},
		{"infinite centroid", CircleDims{Radius: 1}, orb.Point{math.Inf(1), 0}, errors.ErrCodeInvalidInput},
		{"nil dims", nil, orb.Point{}, errors.ErrCodeInvalidInput},
		{"rectangle area overflow", RectangleDims{Length: 1e200, Width: 1e200}, orb.Point{1, 1}, errors.ErrCodeInvalidDimension},
		{"circle area overflow", CircleDims{Radius: 1e160}, orb.Point{}, errors.ErrCodeInvalidDimension},
		{"triangle area underflow", TriangleDims{Base: 1e-200, Height: 1e-200}, orb.Point{}, errors.ErrCodeInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Filled, tt.dims, tt.centroid)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{
		"rectangle": Rectangle,
		"Rect":      Rectangle,
		"triangle":  Triangle,
		"TRI":       Triangle,
		"circle":    Circle,
		" circ ":    Circle,
	} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseKind("hexagon")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidKind))
}

func TestNewDimensions(t *testing.T) {
	d, err := NewDimensions(Triangle, 3, 1.5)
	require.NoError(t, err)
	assert.Equal(t, TriangleDims{Base: 3, Height: 1.5}, d)

	_, err = NewDimensions(Circle, 1, 2)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = NewDimensions(Kind(9), 1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidKind))
}

func TestRecordString(t *testing.T) {
	rec, err := New(Filled, RectangleDims{Length: 4, Width: 2}, orb.Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, "Rectangle centered at (0.00, 0.00) with area 8.00", rec.String())

	hole, err := New(Hole, CircleDims{Radius: 1}, orb.Point{5, 0})
	require.NoError(t, err)
	assert.Equal(t, "Circle hole centered at (5.00, 0.00) with area 3.14", hole.String())
}
