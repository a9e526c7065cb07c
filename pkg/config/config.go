// Package config loads the optional blobposter.toml settings file.
//
// A config file overlays the built-in defaults; keys it leaves out keep their
// default values. Command-line flags are applied on top by the CLI.
//
//	[poster]
//	layers = 12
//	seed = 7
//	wobble_min = 0.1
//	wobble_max = 0.4
//	mode = "builtin"
//
//	[palette]
//	file = "~/posters/palette.csv"
//	header = "title"
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/blobposter/pkg/palette"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// ErrNoConfig is returned by Load when no path was given and none of the
// search paths exist. The returned config holds the defaults.
var ErrNoConfig = errors.New("no config file found; using defaults")

type Config struct {
	Poster  PosterSection  `toml:"poster"`
	Palette PaletteSection `toml:"palette"`

	path string // file the config was read from, empty for defaults
}

type PosterSection struct {
	Layers     int     `toml:"layers"`
	Seed       int64   `toml:"seed"`
	WobbleMin  float64 `toml:"wobble_min"`
	WobbleMax  float64 `toml:"wobble_max"`
	RadiusMin  float64 `toml:"radius_min"`
	RadiusMax  float64 `toml:"radius_max"`
	Mode       string  `toml:"mode"`        // sampled, builtin or single
	SampleSize int     `toml:"sample_size"` // colors drawn in sampled mode
	Color      string  `toml:"color"`       // palette entry for single mode
	Width      int     `toml:"width"`       // px; height follows the 3:4 aspect
	Title      string  `toml:"title"`
	Caption    string  `toml:"caption"` // empty means "<n> blobs · seed <s>"
	Background string  `toml:"background"`
}

type PaletteSection struct {
	File   string `toml:"file"`   // empty means the default data path
	Header string `toml:"header"` // lower or title
}

func Defaults() *Config {
	d := poster.DefaultConfig()
	return &Config{
		Poster: PosterSection{
			Layers:     d.Layers,
			Seed:       d.Seed,
			WobbleMin:  d.Wobble.Min,
			WobbleMax:  d.Wobble.Max,
			RadiusMin:  d.Radius.Min,
			RadiusMax:  d.Radius.Max,
			Mode:       string(d.Mode),
			SampleSize: d.SampleSize,
			Width:      d.Width,
			Title:      d.Title,
			Background: d.Background,
		},
		Palette: PaletteSection{Header: palette.HeaderLower.String()},
	}
}

// Load loads configuration from explicit path or discovered search path.
// Precedence: provided path else first existing search path else defaults.
// Without a file it returns the defaults and ErrNoConfig; read and parse
// errors also return the defaults.
func Load(path string) (*Config, error) {
	defaults := Defaults()
	chosen := path
	if chosen == "" {
		for _, p := range SearchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen == "" {
		return defaults, ErrNoConfig
	}

	data, err := os.ReadFile(chosen)
	if err != nil {
		return defaults, fmt.Errorf("read config: %w", err)
	}
	cfg := Defaults()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return defaults, fmt.Errorf("parse config %s: %w", chosen, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return defaults, fmt.Errorf("parse config %s: unknown key %q", chosen, undecoded[0].String())
	}
	cfg.path = chosen
	cfg.normalize()
	return cfg, nil
}

// SearchPaths lists the locations Load tries, in order.
func SearchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "blobposter", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "blobposter", "config.toml"))
	}
	return out
}

// Path returns the file the config was read from, or "" for defaults.
func (c *Config) Path() string { return c.path }

// PosterConfig converts the [poster] table into a poster.Config.
func (c *Config) PosterConfig() (poster.Config, error) {
	mode, err := poster.ParseMode(c.Poster.Mode)
	if err != nil {
		return poster.Config{}, err
	}
	p := c.Poster
	cfg := poster.Config{
		Layers:     p.Layers,
		Seed:       p.Seed,
		Wobble:     poster.Range{Min: p.WobbleMin, Max: p.WobbleMax},
		Radius:     poster.Range{Min: p.RadiusMin, Max: p.RadiusMax},
		Mode:       mode,
		SampleSize: p.SampleSize,
		Color:      p.Color,
		Width:      p.Width,
		Background: p.Background,
		Title:      p.Title,
		Caption:    p.Caption,
	}
	cfg.SetDefaults()
	return cfg, nil
}

// HeaderStyle returns the configured palette header style.
func (c *Config) HeaderStyle() (palette.HeaderStyle, error) {
	return palette.ParseHeaderStyle(c.Palette.Header)
}

// PaletteFile returns the configured palette path with a leading "~/"
// expanded, or fallback when none is configured.
func (c *Config) PaletteFile(fallback string) string {
	f := c.Palette.File
	if f == "" {
		return fallback
	}
	if rest, ok := strings.CutPrefix(f, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	if !filepath.IsAbs(f) && c.path != "" {
		return filepath.Join(filepath.Dir(c.path), f)
	}
	return f
}

// normalize fills values a file may have zeroed or blanked out. A width or
// sample_size of zero or less means the default. Other numbers are passed
// through unclamped to the generator.
func (c *Config) normalize() {
	d := Defaults()
	if c.Poster.Width <= 0 {
		c.Poster.Width = d.Poster.Width
	}
	if c.Poster.SampleSize <= 0 {
		c.Poster.SampleSize = d.Poster.SampleSize
	}
	c.Poster.Mode = strings.ToLower(strings.TrimSpace(c.Poster.Mode))
	if c.Poster.Mode == "" {
		c.Poster.Mode = d.Poster.Mode
	}
	if c.Poster.Background == "" {
		c.Poster.Background = d.Poster.Background
	}
	c.Palette.Header = strings.ToLower(strings.TrimSpace(c.Palette.Header))
	if c.Palette.Header == "" {
		c.Palette.Header = d.Palette.Header
	}
}
