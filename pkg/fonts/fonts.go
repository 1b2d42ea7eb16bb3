// Package fonts provides the font used for figure labels.
//
// Raster output embeds the Go Regular typeface from golang.org/x/image so
// legends render identically on every machine. SVG output references the same
// family by name with generic fallbacks.
package fonts

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family used in SVG output.
const FontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

// RegularTTF returns the Go Regular TrueType data.
func RegularTTF() []byte {
	return goregular.TTF
}

var (
	regular     *text.FontSource
	regularErr  error
	regularOnce sync.Once
)

// Regular returns a shared font source for Go Regular.
// The source is parsed once on first access.
func Regular() (*text.FontSource, error) {
	regularOnce.Do(func() {
		regular, regularErr = text.NewFontSource(goregular.TTF)
	})
	return regular, regularErr
}

// Face returns a Go Regular face at the given size in pixels.
func Face(size float64) (text.Face, error) {
	src, err := Regular()
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}
