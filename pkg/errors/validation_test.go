package errors

import (
	"math"
	"testing"
)

func TestValidateDimension(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"positive", 2.0, false},
		{"small positive", 0.1, false},
		{"large", 1e9, false},

		{"zero", 0, true},
		{"negative", -1.5, true},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
		{"-Inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimension("length", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimension(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimension) {
				t.Errorf("ValidateDimension(%v) code = %v, want %v", tt.value, GetCode(err), ErrCodeInvalidDimension)
			}
		})
	}
}

func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"negative", -12.5, false},
		{"positive", 3, false},

		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate("centroid x", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "figure.svg", false},
		{"nested", "out/figure.png", false},
		{"absolute", "/tmp/figure.pdf", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 600)), true},
		{"null byte", "fig\x00ure.svg", true},
		{"newline", "fig\nure.svg", true},
		{"directory", "out/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
