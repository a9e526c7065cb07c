package sink

import (
	"image/color"
	"testing"

	"github.com/matzehuels/blobposter/pkg/palette"
	"github.com/matzehuels/blobposter/pkg/poster"
)

func testPoster(t *testing.T, layers int) *poster.Poster {
	t.Helper()
	cfg := poster.DefaultConfig()
	cfg.Seed = 42
	cfg.Layers = layers
	p, err := poster.Generate(cfg, palette.Defaults())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return p
}

// redSquarePoster is a white canvas with a single half-transparent red blob
// centered on it and no labels.
func redSquarePoster() *poster.Poster {
	center := poster.Point{X: 0.5, Y: 0.5}
	return &poster.Poster{
		Config:     poster.DefaultConfig(),
		Width:      60,
		Height:     80,
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Layers: []poster.Layer{{
			Center: center,
			Radius: 0.3,
			Color:  palette.NewEntry("red", 1, 0, 0),
			Alpha:  128.0 / 255,
			Shape:  poster.NewBlob(center, 0.3, 0, poster.BlobPoints, poster.NewSource(1)),
		}},
	}
}
