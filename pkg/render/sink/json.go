package sink

import (
	"encoding/json"

	"github.com/matzehuels/composite/pkg/composite"
	"github.com/matzehuels/composite/pkg/shape"
)

type jsonOutput struct {
	TotalArea float64     `json:"total_area"`
	MomentX   float64     `json:"moment_x"`
	MomentY   float64     `json:"moment_y"`
	Centroid  jsonPoint   `json:"centroid"`
	Shapes    []jsonShape `json:"shapes"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonShape struct {
	Index      int                `json:"index"`
	Role       string             `json:"role"`
	Kind       string             `json:"kind"`
	Spec       string             `json:"spec"`
	Dimensions map[string]float64 `json:"dimensions"`
	Centroid   jsonPoint          `json:"centroid"`
	Area       float64            `json:"area"`
	Vertices   []jsonPoint        `json:"vertices,omitempty"`
	Radius     float64            `json:"radius,omitempty"`
}

// RenderJSON exports the computed figure: totals, centroid and every shape
// with its dimensions and outline. Filled shapes come first, then holes.
func RenderJSON(res composite.Result) ([]byte, error) {
	out := jsonOutput{
		TotalArea: res.TotalArea,
		MomentX:   res.MomentX,
		MomentY:   res.MomentY,
		Centroid:  jsonPoint{res.Centroid.X(), res.Centroid.Y()},
		Shapes:    make([]jsonShape, 0, len(res.Parts)),
	}

	for _, part := range res.Parts {
		rec, o := part.Record, part.Outline
		s := jsonShape{
			Index:      part.Index,
			Role:       part.Role().String(),
			Kind:       o.Kind.String(),
			Spec:       shape.Format(rec),
			Dimensions: dimensionMap(rec),
			Centroid:   jsonPoint{rec.Centroid().X(), rec.Centroid().Y()},
			Area:       rec.Area(),
			Radius:     o.Radius,
		}
		for _, v := range o.Vertices {
			s.Vertices = append(s.Vertices, jsonPoint{v.X(), v.Y()})
		}
		out.Shapes = append(out.Shapes, s)
	}

	return json.MarshalIndent(out, "", "  ")
}

func dimensionMap(rec shape.Record) map[string]float64 {
	names := shape.DimensionNames(rec.Kind())
	values := rec.Dimensions().Values()
	m := make(map[string]float64, len(names))
	for i, n := range names {
		m[n] = values[i]
	}
	return m
}
