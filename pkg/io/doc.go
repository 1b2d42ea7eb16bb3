// Package io reads composite figure definitions from files.
//
// # Overview
//
// A figure file lists filled shapes and holes in the order they should be
// entered. Reading a file does not touch any registry: [ReadFile] returns
// the resolved [Item] list and the caller appends each item, so validation
// errors surface exactly as they would for a shape typed by hand.
//
// The tool never writes figure files. Sessions are not persisted.
//
// # TOML Format
//
//	[[shape]]
//	kind = "rectangle"
//	dimensions = [4, 2]
//	centroid = [0, 0]
//
//	[[shape]]
//	spec = "circle:1@5,0"
//
//	[[hole]]
//	kind = "rect"
//	dimensions = [2, 2]
//
// # JSON Format
//
//	{
//	  "shapes": [{"kind": "rectangle", "dimensions": [4, 2], "centroid": [0, 0]}],
//	  "holes":  [{"spec": "rect:2x2@0,0"}]
//	}
//
// # Entry Fields
//
// Each entry is either a compact spec (see [shape.Parse]) or a structured
// definition:
//
//   - kind: "rectangle", "triangle" or "circle" (short forms accepted)
//   - dimensions: [length, width], [base, height] or [radius]; defaults
//     to the form defaults when omitted
//   - centroid: [x, y]; defaults to the origin
//
// Mixing spec with the structured fields in one entry is an error.
//
// [shape.Parse]: github.com/matzehuels/composite/pkg/shape.Parse
package io
