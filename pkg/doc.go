// Package pkg provides the core libraries for composite, a centroid
// calculator for composite planar figures.
//
// # Overview
//
// A composite figure is a set of primitive shapes (rectangles, right
// triangles and circles) that are either filled or cut out as holes. Its
// centroid is the area-weighted mean of the part centroids, with holes
// contributing negative area. The pkg directory is organized into:
//
//  1. [shape] and [registry] - Domain values and the append-only figure
//  2. [composite] - The centroid computation
//  3. [pipeline] - Orchestration (compute → render) used by every entry point
//  4. [render] - Viewport geometry, output sinks and colour styles
//  5. Infrastructure - [cache], [session], [errors], [observability], [io]
//
// # Architecture
//
// The typical data flow:
//
//	flags / figure file / interactive form
//	         ↓
//	    [shape] package (parse and validate records)
//	         ↓
//	    [registry] package (ordered filled shapes and holes)
//	         ↓
//	    [composite] package (total area + centroid)
//	         ↓
//	    [render/sink] package (SVG/PNG/PDF/JSON/GeoJSON)
//
// # Quick Start
//
//	reg := registry.New()
//	reg.Append(shape.Filled, shape.RectangleDims{Length: 4, Width: 2}, orb.Point{0, 0})
//	reg.Append(shape.Filled, shape.CircleDims{Radius: 1}, orb.Point{5, 0})
//	reg.Append(shape.Hole, shape.RectangleDims{Length: 2, Width: 2}, orb.Point{0, 0})
//
//	res, err := composite.FromRegistry(reg)
//	if err != nil {
//	    // DEGENERATE_COMPOSITE when holes cancel the filled area
//	}
//	fmt.Printf("(%.2f, %.2f) area %.2f\n", res.Centroid.X(), res.Centroid.Y(), res.TotalArea)
//
//	svg := sink.RenderSVG(res)
//
// # Main Packages
//
// [shape] - Immutable shape records, dimension variants, outlines and the
// compact "rect:4x2@0,0" notation.
//
// [registry] - Ordered, append-only store of filled shapes and holes for one
// figure. Safe for concurrent use.
//
// [composite] - Composite-body theorem: total area, centroid and the
// per-part breakdown used for rendering.
//
// [pipeline] - Validated options, output formats and a [pipeline.Runner]
// that computes and renders with an artifact cache.
//
// [render] - Equal-aspect viewport and grid math. [render/sink] holds the
// output formats and [render/styles] the colour palette.
//
// ## Infrastructure
//
// [cache] - Cache interface with in-memory and no-op implementations, plus
// key derivation for rendered artifacts.
//
// [session] - One figure-entry session: a registry, a cache and an ID used
// to scope cache keys and log lines.
//
// [errors] - Structured errors with stable codes and user-facing messages.
//
// [observability] - Hook interfaces for shape entry, pipeline and cache
// events. The CLI registers logging hooks; libraries only emit events.
//
// [io] - Figure files in TOML.
//
// # Testing
//
//	go test ./...                 # All tests
//	go test ./pkg/composite/...   # Specific package
//	go test -run Example ./pkg/...
//
// [shape]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/shape
// [registry]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/registry
// [composite]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/composite
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/pipeline#Runner
// [render]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/render/styles
// [cache]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/cache
// [session]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/session
// [errors]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/observability
// [io]: https://pkg.go.dev/github.com/matzehuels/composite/pkg/io
package pkg
