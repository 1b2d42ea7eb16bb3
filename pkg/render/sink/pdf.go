package sink

import (
	"github.com/matzehuels/composite/pkg/composite"
	"github.com/matzehuels/composite/pkg/render"
)

// RenderPDF renders the figure as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(res composite.Result, opts ...Option) ([]byte, error) {
	return render.ToPDF(RenderSVG(res, opts...))
}
