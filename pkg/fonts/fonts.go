// Package fonts provides the typefaces used for poster labels.
//
// The Go font family ships inside golang.org/x/image, so the raster sink can
// draw text without any system fonts. Faces are parsed with freetype once and
// cached; if parsing ever fails, callers get basicfont as a fallback.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family used by the SVG sink.
const FontFamily = `'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif`

// Weight selects a face from the family.
type Weight int

const (
	Regular Weight = iota
	Bold
)

var (
	parseOnce sync.Once
	regular   *truetype.Font
	bold      *truetype.Font
	parseErr  error
)

func parse() {
	regular, parseErr = truetype.Parse(goregular.TTF)
	if parseErr != nil {
		return
	}
	bold, parseErr = truetype.Parse(gobold.TTF)
}

// Font returns the parsed TrueType font for w.
func Font(w Weight) (*truetype.Font, error) {
	parseOnce.Do(parse)
	if parseErr != nil {
		return nil, parseErr
	}
	if w == Bold {
		return bold, nil
	}
	return regular, nil
}

// Face returns a face of the given pixel size. It never fails: when the
// embedded font cannot be parsed it returns basicfont.Face7x13.
func Face(w Weight, size float64) font.Face {
	f, err := Font(w)
	if err != nil || size <= 0 {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
