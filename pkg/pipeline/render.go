package pipeline

import (
	"fmt"

	"github.com/matzehuels/composite/pkg/cache"
	"github.com/matzehuels/composite/pkg/composite"
	"github.com/matzehuels/composite/pkg/render/sink"
)

// Render generates output artifacts in the requested formats. Options are
// expected to be validated.
func Render(res composite.Result, opts Options) (map[string][]byte, error) {
	canvas := opts.canvasOptions()
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(res, canvas...)
		case FormatPNG:
			data, err = sink.RenderPNG(res, canvas...)
		case FormatPDF:
			data, err = sink.RenderPDF(res, canvas...)
		case FormatJSON:
			data, err = sink.RenderJSON(res)
		case FormatGeoJSON:
			data, err = sink.RenderGeoJSON(res)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// HashResult returns the content hash of a computed figure.
func HashResult(res composite.Result) (string, error) {
	data, err := sink.RenderJSON(res)
	if err != nil {
		return "", fmt.Errorf("serialize result for cache key: %w", err)
	}
	return cache.Hash(data), nil
}
