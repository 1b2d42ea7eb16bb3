package shape

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/composite/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in       string
		dims     Dimensions
		centroid orb.Point
	}{
		{"rect:4x2@0,0", RectangleDims{Length: 4, Width: 2}, orb.Point{0, 0}},
		{"rectangle:1.5x3@-1,2.5", RectangleDims{Length: 1.5, Width: 3}, orb.Point{-1, 2.5}},
		{"tri:3x1.5", TriangleDims{Base: 3, Height: 1.5}, orb.Point{0, 0}},
		{"circle:1@5,0", CircleDims{Radius: 1}, orb.Point{5, 0}},
		{"circle", CircleDims{Radius: 1}, orb.Point{0, 0}},
		{"rect@3,4", RectangleDims{Length: 2, Width: 2}, orb.Point{3, 4}},
		{" Triangle: 2 x 2 @ 1 , 1 ", TriangleDims{Base: 2, Height: 2}, orb.Point{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			spec, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.dims, spec.Dims)
			assert.Equal(t, tt.centroid, spec.Centroid)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		code errors.Code
	}{
		{"", errors.ErrCodeInvalidInput},
		{"hexagon:1", errors.ErrCodeInvalidKind},
		{"rect:4", errors.ErrCodeInvalidInput},
		{"circle:1x2", errors.ErrCodeInvalidInput},
		{"rect:ax2", errors.ErrCodeInvalidInput},
		{"rect:4x2@1", errors.ErrCodeInvalidInput},
		{"rect:4x2@1,b", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestParseDefersDimensionCheck(t *testing.T) {
	spec, err := Parse("circle:-1")
	require.NoError(t, err)

	_, err = spec.Record(Filled)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidDimension))
}

func TestFormatRoundTrip(t *testing.T) {
	for _, in := range []string{"rect:4x2@0,0", "tri:3x1.5@1,-1", "circle:0.25@5,0"} {
		spec, err := Parse(in)
		require.NoError(t, err)
		rec, err := spec.Record(Hole)
		require.NoError(t, err)
		assert.Equal(t, in, Format(rec))
	}
}
