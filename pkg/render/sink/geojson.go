package sink

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/matzehuels/composite/pkg/composite"
	"github.com/matzehuels/composite/pkg/shape"
)

// GeoJSONOption configures [RenderGeoJSON].
type GeoJSONOption func(*geojsonRenderer)

type geojsonRenderer struct {
	segments int
}

// WithCircleSegments sets how many sides approximate a circle
// (default [shape.DefaultCircleSegments]).
func WithCircleSegments(n int) GeoJSONOption {
	return func(r *geojsonRenderer) { r.segments = n }
}

// RenderGeoJSON exports the figure as a GeoJSON FeatureCollection in figure
// coordinates. Every part becomes a Polygon feature carrying its role, kind,
// index and area; holes are separate features rather than polygon interior
// rings because they are not required to lie inside a filled shape. The
// centroid is a final Point feature with the totals.
func RenderGeoJSON(res composite.Result, opts ...GeoJSONOption) ([]byte, error) {
	r := geojsonRenderer{segments: shape.DefaultCircleSegments}
	for _, opt := range opts {
		opt(&r)
	}

	fc := geojson.NewFeatureCollection()
	for _, part := range res.Parts {
		f := geojson.NewFeature(orb.Polygon{part.Outline.Ring(r.segments)})
		f.Properties["role"] = part.Role().String()
		f.Properties["kind"] = part.Outline.Kind.String()
		f.Properties["index"] = part.Index
		f.Properties["area"] = part.Record.Area()
		f.Properties["spec"] = shape.Format(part.Record)
		fc.Append(f)
	}

	c := geojson.NewFeature(res.Centroid)
	c.Properties["role"] = "centroid"
	c.Properties["total_area"] = res.TotalArea
	c.Properties["moment_x"] = res.MomentX
	c.Properties["moment_y"] = res.MomentY
	fc.Append(c)

	return fc.MarshalJSON()
}
