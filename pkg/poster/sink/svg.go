package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/blobposter/pkg/fonts"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// svgUnits is the number of user units per pixel. svgo takes integer
// coordinates, so the viewBox is scaled up to keep sub-pixel precision.
const svgUnits = 10

// labelColor is the fill of title and caption text.
var labelColor = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale float64
}

// WithSVGScale multiplies the outer width/height attributes; the drawing
// itself is resolution independent.
func WithSVGScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// RenderSVG draws the poster as SVG: background, blobs in order, then labels.
func RenderSVG(p *poster.Poster, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}

	w, h := p.Width, p.Height
	vw, vh := w*svgUnits, h*svgUnits

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(int(math.Round(float64(w)*r.scale)), int(math.Round(float64(h)*r.scale)), 0, 0, vw, vh)
	canvas.Title(p.Config.Title)

	canvas.Rect(0, 0, vw, vh, "fill:"+hexOf(p.Background))

	canvas.Gid("blobs")
	for i, l := range p.Layers {
		xs, ys := polygon(l.Shape, vw, vh)
		canvas.Polygon(xs, ys, fmt.Sprintf(`id="blob-%d"`, i), fillStyle(l.Color.Hex(), l.Alpha))
	}
	canvas.Gend()

	for _, lb := range p.Labels {
		x, y := toUnits(lb.At, vw, vh)
		canvas.Text(x, y, lb.Text, textStyle(lb, vh))
	}

	canvas.End()
	return buf.Bytes()
}

func polygon(b poster.Blob, w, h int) (xs, ys []int) {
	xs = make([]int, len(b))
	ys = make([]int, len(b))
	for i, pt := range b {
		xs[i], ys[i] = toUnits(pt, w, h)
	}
	return xs, ys
}

// toUnits maps unit coordinates (origin bottom-left) to SVG coordinates
// (origin top-left).
func toUnits(p poster.Point, w, h int) (int, int) {
	return int(math.Round(p.X * float64(w))), int(math.Round((1 - p.Y) * float64(h)))
}

func fillStyle(hex string, alpha float64) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f;stroke:none", hex, alpha)
}

func textStyle(lb poster.Label, h int) string {
	weight := "normal"
	if lb.Role == poster.RoleTitle {
		weight = "bold"
	}
	size := int(math.Round(lb.Size * float64(h)))
	return fmt.Sprintf("font-family:%s;font-size:%dpx;font-weight:%s;fill:%s",
		fonts.FontFamily, size, weight, hexOf(labelColor))
}

func hexOf(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
