package poster

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	perrors "github.com/matzehuels/blobposter/pkg/errors"
	"github.com/matzehuels/blobposter/pkg/palette"
)

// layerSummary is the observable tuple of a layer.
type layerSummary struct {
	Center Point
	Radius float64
	Wobble float64
	Color  palette.Entry
	Alpha  float64
}

func summarize(p *Poster) []layerSummary {
	out := make([]layerSummary, len(p.Layers))
	for i, l := range p.Layers {
		out[i] = layerSummary{l.Center, l.Radius, l.Wobble, l.Color, l.Alpha}
	}
	return out
}

func mustGenerate(t *testing.T, cfg Config, store []palette.Entry) *Poster {
	t.Helper()
	p, err := Generate(cfg, store)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return p
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1234
	cfg.Layers = 12
	store := append(palette.Defaults(), palette.Builtin()...)

	a := mustGenerate(t, cfg, store)
	b := mustGenerate(t, cfg, store)

	if diff := cmp.Diff(summarize(a), summarize(b)); diff != "" {
		t.Errorf("same seed produced different layers (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Layers, b.Layers); diff != "" {
		t.Errorf("same seed produced different shapes (-a +b):\n%s", diff)
	}
}

func TestGenerateSeedMatters(t *testing.T) {
	cfg := DefaultConfig()
	store := palette.Defaults()

	cfg.Seed = 1
	a := mustGenerate(t, cfg, store)
	cfg.Seed = 2
	b := mustGenerate(t, cfg, store)

	if cmp.Equal(summarize(a), summarize(b)) {
		t.Error("different seeds produced identical posters")
	}
}

func TestGenerateDefaultScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 0
	cfg.Layers = 8

	p := mustGenerate(t, cfg, palette.Defaults())

	if len(p.Layers) != 8 {
		t.Fatalf("got %d layers, want 8", len(p.Layers))
	}
	for i, l := range p.Layers {
		if len(l.Shape) != BlobPoints {
			t.Errorf("layer %d: %d points, want %d", i, len(l.Shape), BlobPoints)
		}
		if l.Alpha < MinAlpha || l.Alpha >= MaxAlpha {
			t.Errorf("layer %d: alpha %v outside [%v, %v)", i, l.Alpha, MinAlpha, MaxAlpha)
		}
		if l.Radius < cfg.Radius.Min || l.Radius >= cfg.Radius.Max {
			t.Errorf("layer %d: radius %v outside %v", i, l.Radius, cfg.Radius)
		}
		if l.Wobble < cfg.Wobble.Min || l.Wobble >= cfg.Wobble.Max {
			t.Errorf("layer %d: wobble %v outside %v", i, l.Wobble, cfg.Wobble)
		}
		if l.Center.X < 0 || l.Center.X >= 1 || l.Center.Y < 0 || l.Center.Y >= 1 {
			t.Errorf("layer %d: center %v outside unit square", i, l.Center)
		}
		if palette.Find(p.Colors, l.Color.Name) < 0 {
			t.Errorf("layer %d: color %q not in working list", i, l.Color.Name)
		}
	}

	if len(p.Labels) != 2 || p.Labels[0].Role != RoleTitle || p.Labels[1].Role != RoleCaption {
		t.Errorf("labels = %+v, want title then caption", p.Labels)
	}
	if p.Width != DefaultWidth || p.Height != 800 {
		t.Errorf("canvas = %dx%d, want %dx800", p.Width, p.Height, DefaultWidth)
	}
}

func TestBlobWithinWobbleBounds(t *testing.T) {
	src := NewSource(99)
	center := Point{X: 0.5, Y: 0.5}
	radius, wobble := 0.2, 0.4

	b := NewBlob(center, radius, wobble, BlobPoints, src)
	if len(b) != BlobPoints {
		t.Fatalf("NewBlob() returned %d points, want %d", len(b), BlobPoints)
	}

	const eps = 1e-12
	lo, hi := radius*(1-wobble/2), radius*(1+wobble/2)
	for i, p := range b {
		d := p.Dist(center)
		if d < lo-eps || d > hi+eps {
			t.Errorf("point %d at distance %v, want within [%v, %v]", i, d, lo, hi)
		}
	}
}

func TestBlobEvenAngles(t *testing.T) {
	b := NewBlob(Point{}, 1, 0, 4, NewSource(1))
	want := []Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for i, p := range b {
		if math.Abs(p.X-want[i].X) > 1e-9 || math.Abs(p.Y-want[i].Y) > 1e-9 {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
}

func TestBlobBounds(t *testing.T) {
	b := Blob{{0, 0}, {2, -1}, {1, 3}}
	lo, hi := b.Bounds()
	if lo != (Point{0, -1}) || hi != (Point{2, 3}) {
		t.Errorf("Bounds() = %v, %v", lo, hi)
	}
	if lo, hi := (Blob{}).Bounds(); lo != (Point{}) || hi != (Point{}) {
		t.Errorf("empty Bounds() = %v, %v", lo, hi)
	}
}

func TestSampledModeClampsToStore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleSize = 6

	p := mustGenerate(t, cfg, palette.Defaults())
	if len(p.Colors) != len(palette.Defaults()) {
		t.Errorf("working colors = %d, want %d", len(p.Colors), len(palette.Defaults()))
	}
}

func TestSampledModeSampleSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleSize = 2

	p := mustGenerate(t, cfg, palette.Builtin())
	if len(p.Colors) != 2 {
		t.Errorf("working colors = %d, want 2", len(p.Colors))
	}
}

func TestBuiltinModeIgnoresStore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeBuiltin

	p := mustGenerate(t, cfg, nil)
	if diff := cmp.Diff(palette.Builtin(), p.Colors); diff != "" {
		t.Errorf("builtin colors mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeSingle
	cfg.Color = "sun"

	p := mustGenerate(t, cfg, palette.Defaults())
	for i, l := range p.Layers {
		if l.Color.Name != "sun" {
			t.Errorf("layer %d: color %q, want sun", i, l.Color.Name)
		}
	}
}

func TestSingleModeNotFound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeSingle
	cfg.Color = "ocean"

	_, err := Generate(cfg, palette.Defaults())
	if !perrors.IsNotFound(err) {
		t.Errorf("Generate() error = %v, want NOT_FOUND", err)
	}
}

func TestEmptyStore(t *testing.T) {
	_, err := Generate(DefaultConfig(), nil)
	if !perrors.Is(err, perrors.ErrCodeInvalidInput) {
		t.Errorf("Generate() error = %v, want INVALID_INPUT", err)
	}
}

func TestInvertedRangesDoNotFail(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Radius = Range{Min: 0.3, Max: 0.1}
	cfg.Wobble = Range{Min: 0.5, Max: 0.5}

	p := mustGenerate(t, cfg, palette.Defaults())
	for i, l := range p.Layers {
		if l.Radius > 0.3 || l.Radius < 0.1 {
			t.Errorf("layer %d: radius %v outside the reversed interval", i, l.Radius)
		}
		if l.Wobble != 0.5 {
			t.Errorf("layer %d: wobble %v, want 0.5 for a zero-width range", i, l.Wobble)
		}
	}
}

func TestNonPositiveLayers(t *testing.T) {
	cfg := DefaultConfig()
	for _, n := range []int{0, -3} {
		cfg.Layers = n
		p := mustGenerate(t, cfg, palette.Defaults())
		if len(p.Layers) != 0 {
			t.Errorf("Layers=%d produced %d layers", n, len(p.Layers))
		}
	}
}

func TestInvalidBackground(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Background = "beige"
	if _, err := Generate(cfg, palette.Defaults()); !perrors.Is(err, perrors.ErrCodeInvalidInput) {
		t.Errorf("Generate() error = %v, want INVALID_INPUT", err)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    PaletteMode
		wantErr bool
	}{
		{"", ModeSampled, false},
		{"sampled", ModeSampled, false},
		{"Builtin", ModeBuiltin, false},
		{" single ", ModeSingle, false},
		{"random", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCaptionText(t *testing.T) {
	cfg := Config{Layers: 8, Seed: 3}
	if got := cfg.CaptionText(); got != "8 blobs · seed 3" {
		t.Errorf("CaptionText() = %q", got)
	}
	cfg.Caption = "custom"
	if got := cfg.CaptionText(); got != "custom" {
		t.Errorf("CaptionText() = %q, want custom", got)
	}
}

func TestUniformReversed(t *testing.T) {
	src := NewSource(5)
	for range 100 {
		v := Uniform(src, 1, 0)
		if v <= 0 || v > 1 {
			t.Fatalf("Uniform(1, 0) = %v, want within (0, 1]", v)
		}
	}
}
