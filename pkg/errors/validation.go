package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateDimension checks that a shape dimension is a finite, strictly
// positive number. The name is used in the error message ("length",
// "radius", ...).
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidDimension, "%s must be a finite number, got %g", name, v)
	}
	if v <= 0 {
		return New(ErrCodeInvalidDimension, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateCoordinate checks that a centroid coordinate is finite.
// Negative and zero coordinates are valid.
func ValidateCoordinate(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number, got %g", name, v)
	}
	return nil
}

// ValidateOutputPath validates a render output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}

	return nil
}
