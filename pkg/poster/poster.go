// Package poster generates abstract posters made of translucent wobbly blobs.
//
// # Overview
//
// [Generate] is a pure function of a [Config], the palette store contents and
// the seed: it draws Config.Layers blobs, each with a random center in the
// unit square, a random radius and wobble from the configured ranges, a color
// from the working palette and a random opacity in [MinAlpha, MaxAlpha]. The
// resulting [Poster] lists the blobs in draw order plus a title and a caption.
//
//	cfg := poster.DefaultConfig()
//	cfg.Seed = 7
//	p, err := poster.Generate(cfg, entries)
//
// Turning a Poster into pixels, SVG or PDF is the job of the [sink] package.
//
// # Determinism
//
// All randomness is drawn from one [Source] seeded with Config.Seed, in a
// fixed order: palette sample, then per layer center, radius, wobble, color
// index, the blob's point jitter and finally the opacity. The same seed and
// config always reproduce the same poster.
//
// # Palette modes
//
//   - [ModeSampled]: min(SampleSize, len(store)) colors sampled from the store
//   - [ModeBuiltin]: the fixed [palette.Builtin] list; the store is ignored
//   - [ModeSingle]: every blob uses the store color named Config.Color
//
// [sink]: github.com/matzehuels/blobposter/pkg/poster/sink
package poster

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	perrors "github.com/matzehuels/blobposter/pkg/errors"
	"github.com/matzehuels/blobposter/pkg/palette"
)

// Layer is one filled blob.
type Layer struct {
	Center Point         `json:"center"`
	Radius float64       `json:"radius"`
	Wobble float64       `json:"wobble"`
	Color  palette.Entry `json:"color"`
	Alpha  float64       `json:"alpha"`
	Shape  Blob          `json:"-"`
}

// Fill returns the layer's fill color including its opacity.
func (l Layer) Fill() color.NRGBA {
	return l.Color.RGBA(l.Alpha)
}

// LabelRole distinguishes the two text overlays.
type LabelRole string

const (
	RoleTitle   LabelRole = "title"
	RoleCaption LabelRole = "caption"
)

// Label is a text overlay anchored at its left baseline.
type Label struct {
	Role LabelRole `json:"role"`
	Text string    `json:"text"`
	At   Point     `json:"at"`
	Size float64   `json:"size"` // font size as a fraction of canvas height
}

// Fixed label placement.
var (
	titleAt   = Point{X: 0.05, Y: 0.94}
	captionAt = Point{X: 0.05, Y: 0.03}
)

const (
	titleSize   = 0.045
	captionSize = 0.02
)

// Poster is a composed scene ready for a sink.
type Poster struct {
	Config     Config          `json:"config"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Background color.NRGBA     `json:"-"`
	Colors     []palette.Entry `json:"colors"` // working color list
	Layers     []Layer         `json:"layers"`
	Labels     []Label         `json:"labels"`
}

// Generate composes a poster from cfg. store is the palette store contents;
// it is only consulted in the sampled and single modes.
func Generate(cfg Config, store []palette.Entry) (*Poster, error) {
	cfg.SetDefaults()

	bg, err := ParseColor(cfg.Background)
	if err != nil {
		return nil, err
	}

	src := NewSource(cfg.Seed)
	colors, err := WorkingColors(cfg, store, src)
	if err != nil {
		return nil, err
	}

	p := &Poster{
		Config:     cfg,
		Width:      cfg.Width,
		Height:     cfg.Height(),
		Background: bg,
		Colors:     colors,
		Layers:     make([]Layer, 0, max(cfg.Layers, 0)),
	}

	for range max(cfg.Layers, 0) {
		p.Layers = append(p.Layers, drawLayer(cfg, colors, src))
	}

	p.Labels = []Label{
		{Role: RoleTitle, Text: cfg.Title, At: titleAt, Size: titleSize},
		{Role: RoleCaption, Text: cfg.CaptionText(), At: captionAt, Size: captionSize},
	}
	return p, nil
}

func drawLayer(cfg Config, colors []palette.Entry, src Source) Layer {
	center := Point{X: src.Float64(), Y: src.Float64()}
	radius := Uniform(src, cfg.Radius.Min, cfg.Radius.Max)
	wobble := Uniform(src, cfg.Wobble.Min, cfg.Wobble.Max)
	c := colors[src.IntN(len(colors))]
	shape := NewBlob(center, radius, wobble, BlobPoints, src)
	alpha := Uniform(src, MinAlpha, MaxAlpha)

	return Layer{
		Center: center,
		Radius: radius,
		Wobble: wobble,
		Color:  c,
		Alpha:  alpha,
		Shape:  shape,
	}
}

// WorkingColors selects the color list blobs are filled from.
func WorkingColors(cfg Config, store []palette.Entry, src Source) ([]palette.Entry, error) {
	var colors []palette.Entry
	switch cfg.Mode {
	case ModeSampled, "":
		k := cfg.SampleSize
		if k == 0 {
			k = DefaultSampleSize
		}
		colors = palette.Sample(store, k, src)
	case ModeBuiltin:
		colors = palette.Builtin()
	case ModeSingle:
		i := palette.Find(store, cfg.Color)
		if i < 0 {
			return nil, perrors.New(perrors.ErrCodeNotFound, "%s not found", cfg.Color)
		}
		colors = []palette.Entry{store[i]}
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidMode, "invalid mode: %q", cfg.Mode)
	}
	if len(colors) == 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "no colors to draw with (palette is empty)")
	}
	return colors, nil
}

// ParseColor parses a "#rrggbb" string into an opaque color.
func ParseColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "invalid color %q", hex)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
