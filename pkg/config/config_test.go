package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	perrors "github.com/matzehuels/blobposter/pkg/errors"
	"github.com/matzehuels/blobposter/pkg/palette"
	"github.com/matzehuels/blobposter/pkg/poster"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsMatchPoster(t *testing.T) {
	got, err := Defaults().PosterConfig()
	if err != nil {
		t.Fatalf("PosterConfig() error: %v", err)
	}
	if diff := cmp.Diff(poster.DefaultConfig(), got); diff != "" {
		t.Errorf("defaults differ (-poster +config):\n%s", diff)
	}
}

func TestLoadNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("Load() error = %v, want ErrNoConfig", err)
	}
	if cfg == nil || cfg.Poster.Layers != poster.DefaultLayers {
		t.Errorf("Load() did not return defaults: %+v", cfg)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[poster]
layers = 12
seed = 7
wobble_max = 0.45
mode = "Builtin"

[palette]
header = "title"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}

	pc, err := cfg.PosterConfig()
	if err != nil {
		t.Fatalf("PosterConfig() error: %v", err)
	}
	want := poster.DefaultConfig()
	want.Layers = 12
	want.Seed = 7
	want.Wobble.Max = 0.45
	want.Mode = poster.ModeBuiltin
	if diff := cmp.Diff(want, pc); diff != "" {
		t.Errorf("PosterConfig() mismatch (-want +got):\n%s", diff)
	}

	h, err := cfg.HeaderStyle()
	if err != nil || h != palette.HeaderTitle {
		t.Errorf("HeaderStyle() = %v, %v; want title", h, err)
	}
}

func TestLoadSearchPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, "blobposter")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[poster]\nlayers = 4\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Poster.Layers != 4 {
		t.Errorf("Layers = %d, want 4", cfg.Poster.Layers)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[poster\nlayers = 3"},
		{"type", "[poster]\nlayers = \"many\""},
		{"unknown key", "[poster]\nlayerz = 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if cfg.Poster.Layers != poster.DefaultLayers {
				t.Errorf("failed Load() did not return defaults")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil || errors.Is(err, ErrNoConfig) {
		t.Errorf("explicit missing path: error = %v, want read error", err)
	}
}

func TestNormalizeDoesNotClamp(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[poster]
layers = 100
wobble_min = 0.9
width = 0
sample_size = -2
background = ""
`))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Poster.Layers != 100 || cfg.Poster.WobbleMin != 0.9 {
		t.Errorf("out-of-range values were clamped: %+v", cfg.Poster)
	}
	if cfg.Poster.Width != poster.DefaultWidth || cfg.Poster.SampleSize != poster.DefaultSampleSize {
		t.Errorf("non-positive values not defaulted: %+v", cfg.Poster)
	}
	if cfg.Poster.Background != poster.DefaultBackground {
		t.Errorf("Background = %q", cfg.Poster.Background)
	}
}

func TestPosterConfigInvalidMode(t *testing.T) {
	cfg := Defaults()
	cfg.Poster.Mode = "rainbow"
	if _, err := cfg.PosterConfig(); !perrors.Is(err, perrors.ErrCodeInvalidMode) {
		t.Errorf("PosterConfig() error = %v, want INVALID_MODE", err)
	}
}

func TestPaletteFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Defaults()
	if got := cfg.PaletteFile("/data/palette.csv"); got != "/data/palette.csv" {
		t.Errorf("fallback = %q", got)
	}

	cfg.Palette.File = "~/colors.csv"
	if got, want := cfg.PaletteFile(""), filepath.Join(home, "colors.csv"); got != want {
		t.Errorf("tilde = %q, want %q", got, want)
	}

	cfg.Palette.File = "colors.csv"
	cfg.path = "/etc/blobposter/config.toml"
	if got := cfg.PaletteFile(""); got != "/etc/blobposter/colors.csv" {
		t.Errorf("relative = %q", got)
	}
}

func TestExampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "examples", "config.toml"))
	if err != nil {
		t.Fatalf("Load example: %v", err)
	}
	pc, err := cfg.PosterConfig()
	if err != nil {
		t.Fatal(err)
	}
	if pc.Layers != 12 || pc.Seed != 2024 || pc.Width != 900 {
		t.Errorf("example poster config = %+v", pc)
	}

	path := cfg.PaletteFile("unused.csv")
	if want := filepath.Join("..", "..", "examples", "palette.csv"); path != want {
		t.Errorf("PaletteFile() = %q, want %q", path, want)
	}
	entries, err := palette.NewStore(path).Read()
	if err != nil {
		t.Fatalf("read example palette: %v", err)
	}
	if len(entries) != 6 {
		t.Errorf("example palette has %d entries, want 6", len(entries))
	}
}
