package cli

import (
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"

	"github.com/matzehuels/composite/pkg/composite"
	"github.com/matzehuels/composite/pkg/registry"
	"github.com/matzehuels/composite/pkg/shape"
)

func TestResultMessage(t *testing.T) {
	res := composite.Result{TotalArea: 4 + math.Pi, Centroid: orb.Point{5 * math.Pi / (4 + math.Pi), 0}}

	want := "Composite centroid is at (X: 2.20, Y: 0.00) with total area 7.14."
	if got := resultMessage(res); got != want {
		t.Errorf("resultMessage() = %q, want %q", got, want)
	}
}

func TestShapeListingEmpty(t *testing.T) {
	out := shapeListing(registry.New().Snapshot())

	for _, want := range []string{headingFilled, emptyFilled, headingHoles, emptyHoles} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
}

func TestShapeListing(t *testing.T) {
	reg := registry.New()
	mustAppend := func(role shape.Role, dims shape.Dimensions, c orb.Point) {
		t.Helper()
		if _, err := reg.Append(role, dims, c); err != nil {
			t.Fatal(err)
		}
	}
	mustAppend(shape.Filled, shape.RectangleDims{Length: 4, Width: 2}, orb.Point{0, 0})
	mustAppend(shape.Filled, shape.CircleDims{Radius: 1}, orb.Point{5, 0})
	mustAppend(shape.Hole, shape.RectangleDims{Length: 2, Width: 2}, orb.Point{0, 0})

	out := shapeListing(reg.Snapshot())

	for _, want := range []string{
		"Rectangle", "Circle",
		"length 4 × width 2", "radius 1",
		"(0.00, 0.00)", "(5.00, 0.00)",
		"8.00", "3.14", "4.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("listing missing %q:\n%s", want, out)
		}
	}
	for _, unwanted := range []string{emptyFilled, emptyHoles} {
		if strings.Contains(out, unwanted) {
			t.Errorf("listing should not contain %q", unwanted)
		}
	}

	holes := out[strings.Index(out, headingHoles):]
	if strings.Contains(holes, "Circle") {
		t.Error("circle listed under holes")
	}
}

func TestDimensionText(t *testing.T) {
	tests := []struct {
		dims shape.Dimensions
		want string
	}{
		{shape.RectangleDims{Length: 4, Width: 2}, "length 4 × width 2"},
		{shape.TriangleDims{Base: 3, Height: 1.5}, "base 3 × height 1.5"},
		{shape.CircleDims{Radius: 0.25}, "radius 0.25"},
	}

	for _, tt := range tests {
		if got := dimensionText(tt.dims); got != tt.want {
			t.Errorf("dimensionText(%v) = %q, want %q", tt.dims, got, tt.want)
		}
	}
}
