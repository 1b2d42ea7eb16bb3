// Package pipeline provides the compute → render pipeline for composite
// figures.
//
// This package implements the complete pipeline used by both the interactive
// form and the compute command. By centralizing this logic, both entry points
// report, render and cache results identically.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Compute: Apply the composite-body theorem to the registry contents
//  2. Render: Generate output in various formats (SVG, PNG, PDF, JSON, GeoJSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// Compute is never cached: it is cheap and always reflects the registry as it
// is now. Rendered artifacts are cached under a hash of the computed figure.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(sess.Cache, sess.Keyer(), logger)
//	result, err := runner.Execute(ctx, sess.Registry, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	if errors.Is(err, errors.ErrCodeDegenerateComposite) {
//	    // nothing to render
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	res, err := runner.Compute(ctx, sess.Registry)
//	artifacts, err := runner.Render(ctx, res, opts)
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/composite/pkg/cache"
	"github.com/matzehuels/composite/pkg/composite"
	"github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/render/sink"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = sink.DefaultWidth

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = sink.DefaultHeight

	// MaxDimension bounds the canvas size on either axis.
	MaxDimension = 8192
)

// Format constants for output formats.
const (
	FormatSVG     = "svg"
	FormatPNG     = "png"
	FormatPDF     = "pdf"
	FormatJSON    = "json"
	FormatGeoJSON = "geojson"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:     true,
	FormatPNG:     true,
	FormatPDF:     true,
	FormatJSON:    true,
	FormatGeoJSON: true,
}

// FormatNames lists the formats in display order.
var FormatNames = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatGeoJSON}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for rendering a figure.
type Options struct {
	Formats []string `json:"formats,omitempty"`
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
	// NoGrid hides the background grid. The grid is on by default.
	NoGrid bool `json:"no_grid,omitempty"`
	// NoCache renders even when every artifact is cached.
	NoCache bool `json:"no_cache,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Composite is the computed figure.
	Composite composite.Result

	// Hash is the content hash of the computed figure.
	Hash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether every artifact came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Filled      int
	Holes       int
	ComputeTime time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in unset options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and checks every option.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Width < 1 || o.Width > MaxDimension || o.Height < 1 || o.Height > MaxDimension {
		return errors.New(errors.ErrCodeInvalidInput,
			"canvas size %dx%d out of range (1-%d)", o.Width, o.Height, MaxDimension)
	}
	return nil
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Width:  o.Width,
		Height: o.Height,
		Grid:   !o.NoGrid,
	}
}

// canvasOptions returns the sink options for the canvas formats.
func (o *Options) canvasOptions() []sink.Option {
	return []sink.Option{
		sink.WithSize(o.Width, o.Height),
		sink.WithGrid(!o.NoGrid),
	}
}
