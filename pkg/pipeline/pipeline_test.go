package pipeline

import (
	"reflect"
	"testing"

	"github.com/matzehuels/composite/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"geojson", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"svg", []string{"svg"}},
		{"svg,png", []string{"svg", "png"}},
		{" SVG , png,,svg ", []string{"svg", "png"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := ParseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var o Options
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if !reflect.DeepEqual(o.Formats, []string{FormatSVG}) {
		t.Errorf("Formats = %v, want [svg]", o.Formats)
	}
	if o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want %dx%d", o.Width, o.Height, DefaultWidth, DefaultHeight)
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
	if o.NoGrid {
		t.Error("grid should be on by default")
	}

	// Idempotent
	before := o
	if err := o.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call error: %v", err)
	}
	if !reflect.DeepEqual(before.Formats, o.Formats) || before.Width != o.Width {
		t.Error("ValidateAndSetDefaults should be idempotent")
	}
}

func TestValidateAndSetDefaultsRejects(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"bad format", Options{Formats: []string{"bmp"}}},
		{"negative width", Options{Width: -1}},
		{"huge height", Options{Height: MaxDimension + 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.ValidateAndSetDefaults(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	o := Options{Width: 640, Height: 480, NoGrid: true}
	k := o.ArtifactKeyOpts("png")
	if k.Format != "png" || k.Width != 640 || k.Height != 480 || k.Grid {
		t.Errorf("ArtifactKeyOpts = %+v", k)
	}
}
