package sink

import (
	"github.com/matzehuels/blobposter/pkg/poster"
	"github.com/matzehuels/blobposter/pkg/render"
)

// RenderPDF draws the poster as SVG with opts and converts it to PDF. The page
// takes the SVG's outer size, so WithSVGScale scales the page too. It needs
// rsvg-convert on PATH.
func RenderPDF(p *poster.Poster, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(RenderSVG(p, opts...))
}
