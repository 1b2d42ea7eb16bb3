package styles

import (
	"testing"

	"github.com/matzehuels/composite/pkg/shape"
)

func TestPalettePaint(t *testing.T) {
	p := Default()

	tests := []struct {
		kind    shape.Kind
		role    shape.Role
		want    Color
		opacity float64
	}{
		{shape.Rectangle, shape.Filled, LightBlue, 0.7},
		{shape.Triangle, shape.Filled, LightGreen, 0.7},
		{shape.Circle, shape.Filled, LightCoral, 0.7},
		{shape.Rectangle, shape.Hole, White, 1},
		{shape.Triangle, shape.Hole, White, 1},
		{shape.Circle, shape.Hole, White, 1},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.role.String(), func(t *testing.T) {
			got := p.Paint(tt.kind, tt.role)
			if got.Fill != tt.want {
				t.Errorf("Fill = %v, want %v", got.Fill, tt.want)
			}
			if got.Opacity != tt.opacity {
				t.Errorf("Opacity = %v, want %v", got.Opacity, tt.opacity)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{White, "#ffffff"},
		{Black, "#000000"},
		{LightBlue, "#add8e6"},
		{LightCoral, "#f08080"},
	}
	for _, tt := range tests {
		if got := tt.c.Hex(); got != tt.want {
			t.Errorf("Hex() = %q, want %q", got, tt.want)
		}
	}
}

func TestColorFloats(t *testing.T) {
	r, g, b := White.Floats()
	if r != 1 || g != 1 || b != 1 {
		t.Errorf("White.Floats() = (%v, %v, %v), want (1, 1, 1)", r, g, b)
	}
}
