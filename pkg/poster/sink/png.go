package sink

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/matzehuels/blobposter/pkg/fonts"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// PNGOption configures raster rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the raster scale factor (default 1.0; 2.0 doubles both
// dimensions).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// Rasterize composites the poster onto a fresh canvas: background, each blob
// blended over what is already there, then the labels.
func Rasterize(p *poster.Poster, opts ...PNGOption) *image.RGBA {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}

	w := max(1, int(math.Round(float64(p.Width)*r.scale)))
	h := max(1, int(math.Round(float64(p.Height)*r.scale)))
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(p.Background), image.Point{}, draw.Src)

	for _, l := range p.Layers {
		fillBlob(canvas, l)
	}
	for _, lb := range p.Labels {
		drawLabel(canvas, lb)
	}
	return canvas
}

// RenderPNG rasterizes the poster and encodes it as PNG.
func RenderPNG(p *poster.Poster, opts ...PNGOption) ([]byte, error) {
	img := Rasterize(p, opts...)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fillBlob(dst *image.RGBA, l poster.Layer) {
	if len(l.Shape) < 3 || !onCanvas(l.Shape) {
		return
	}
	b := dst.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	for i, pt := range l.Shape {
		x, y := float32(pt.X)*w, (1-float32(pt.Y))*h
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(l.Fill()), image.Point{})
}

// onCanvas reports whether the blob's bounding box touches the unit square.
func onCanvas(b poster.Blob) bool {
	lo, hi := b.Bounds()
	return lo.X <= 1 && hi.X >= 0 && lo.Y <= 1 && hi.Y >= 0
}

func drawLabel(dst *image.RGBA, lb poster.Label) {
	b := dst.Bounds()
	weight := fonts.Regular
	if lb.Role == poster.RoleTitle {
		weight = fonts.Bold
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(labelColor),
		Face: fonts.Face(weight, lb.Size*float64(b.Dy())),
	}
	x := int(math.Round(lb.At.X * float64(b.Dx())))
	y := int(math.Round((1 - lb.At.Y) * float64(b.Dy())))
	d.Dot = fixed.P(x, y)
	d.DrawString(lb.Text)
}
