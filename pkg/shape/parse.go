package shape

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/matzehuels/composite/pkg/errors"
)

// Spec is a parsed shape notation: a kind, its dimensions and a centroid.
// Missing parts fall back to DefaultDimensions and the origin.
type Spec struct {
	Dims     Dimensions
	Centroid orb.Point
}

// Record creates a record with the given role from the spec.
func (s Spec) Record(role Role) (Record, error) {
	return New(role, s.Dims, s.Centroid)
}

// Parse reads the notation <kind>[:<d1>[x<d2>]][@<cx>,<cy>].
//
// Examples: "rect:4x2@0,0", "tri:3x1.5", "circle:1@5,0", "circle".
func Parse(s string) (Spec, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Spec{}, errors.New(errors.ErrCodeInvalidInput, "empty shape spec")
	}

	body, at, hasAt := strings.Cut(raw, "@")
	kindStr, dimStr, hasDims := strings.Cut(body, ":")

	kind, err := ParseKind(kindStr)
	if err != nil {
		return Spec{}, err
	}

	spec := Spec{Dims: DefaultDimensions(kind)}

	if hasDims && strings.TrimSpace(dimStr) != "" {
		parts := strings.Split(dimStr, "x")
		values := make([]float64, 0, len(parts))
		for _, p := range parts {
			v, err := parseNumber(p)
			if err != nil {
				return Spec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid dimension in %q", raw)
			}
			values = append(values, v)
		}
		dims, err := NewDimensions(kind, values...)
		if err != nil {
			return Spec{}, err
		}
		spec.Dims = dims
	}

	if hasAt {
		xs, ys, ok := strings.Cut(at, ",")
		if !ok {
			return Spec{}, errors.New(errors.ErrCodeInvalidInput, "centroid in %q must be written as x,y", raw)
		}
		x, err := parseNumber(xs)
		if err != nil {
			return Spec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid centroid x in %q", raw)
		}
		y, err := parseNumber(ys)
		if err != nil {
			return Spec{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid centroid y in %q", raw)
		}
		spec.Centroid = orb.Point{x, y}
	}

	return spec, nil
}

// Format writes the record back in Parse notation.
func Format(r Record) string {
	var b strings.Builder
	switch r.Kind() {
	case Rectangle:
		b.WriteString("rect")
	case Triangle:
		b.WriteString("tri")
	case Circle:
		b.WriteString("circle")
	}
	b.WriteByte(':')
	for i, v := range r.dims.Values() {
		if i > 0 {
			b.WriteByte('x')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	b.WriteByte('@')
	b.WriteString(strconv.FormatFloat(r.centroid.X(), 'g', -1, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(r.centroid.Y(), 'g', -1, 64))
	return b.String()
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
