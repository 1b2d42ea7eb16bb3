package composite_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/matzehuels/composite/pkg/composite"
	"github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/registry"
	"github.com/matzehuels/composite/pkg/shape"
)

func ExampleFromRegistry() {
	// A 4×2 plate with a round lug on the right and a square cut-out
	reg := registry.New()
	_, _ = reg.Append(shape.Filled, shape.RectangleDims{Length: 4, Width: 2}, orb.Point{0, 0})
	_, _ = reg.Append(shape.Filled, shape.CircleDims{Radius: 1}, orb.Point{5, 0})
	_, _ = reg.Append(shape.Hole, shape.RectangleDims{Length: 2, Width: 2}, orb.Point{0, 0})

	res, err := composite.FromRegistry(reg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Area: %.2f\n", res.TotalArea)
	fmt.Printf("Centroid: (%.2f, %.2f)\n", res.Centroid.X(), res.Centroid.Y())
	fmt.Println("Parts:", len(res.Filled()), "filled,", len(res.Holes()), "hole")
	// Output:
	// Area: 7.14
	// Centroid: (2.20, 0.00)
	// Parts: 2 filled, 1 hole
}

func ExampleCompute_degenerate() {
	// A hole that exactly cancels the only filled shape
	square, _ := shape.New(shape.Filled, shape.RectangleDims{Length: 2, Width: 2}, orb.Point{0, 0})

	_, err := composite.Compute([]shape.Record{square}, []shape.Record{square})
	fmt.Println(errors.Is(err, errors.ErrCodeDegenerateComposite))
	fmt.Println(errors.UserMessage(err))
	// Output:
	// true
	// Total area is zero; check input shapes and holes.
}
