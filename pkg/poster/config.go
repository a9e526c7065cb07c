package poster

import (
	"fmt"
	"strings"

	perrors "github.com/matzehuels/blobposter/pkg/errors"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// BlobPoints is the number of points sampled around every blob.
	BlobPoints = 200

	// AspectRatio is the canvas width divided by its height (3:4 portrait).
	AspectRatio = 3.0 / 4.0

	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 600

	// DefaultLayers is the default number of blobs.
	DefaultLayers = 8

	// DefaultSampleSize is how many colors sampled mode draws from the store.
	DefaultSampleSize = 6

	// DefaultBackground is the canvas color.
	DefaultBackground = "#f4efe6"

	// DefaultTitle is the poster headline.
	DefaultTitle = "Abstract Poster"

	// MinAlpha and MaxAlpha bound the random fill opacity of a blob.
	MinAlpha = 0.25
	MaxAlpha = 0.6
)

// Control bounds for interactive surfaces. Generate itself does not enforce
// them.
const (
	MinLayers = 3
	MaxLayers = 20
	MinWobble = 0.0
	MaxWobble = 0.5
	MinRadius = 0.05
	MaxRadius = 0.5
)

// DefaultWobble is the default wobble range.
var DefaultWobble = Range{Min: 0.1, Max: 0.3}

// DefaultRadius is the default radius range.
var DefaultRadius = Range{Min: 0.1, Max: 0.25}

// =============================================================================
// Palette modes
// =============================================================================

// PaletteMode selects where the working color list comes from.
type PaletteMode string

const (
	// ModeSampled draws a random sample from the palette store.
	ModeSampled PaletteMode = "sampled"
	// ModeBuiltin uses the fixed built-in palette.
	ModeBuiltin PaletteMode = "builtin"
	// ModeSingle fills every blob with one named store color.
	ModeSingle PaletteMode = "single"
)

// Modes lists the valid palette modes in display order.
var Modes = []PaletteMode{ModeSampled, ModeBuiltin, ModeSingle}

// ParseMode maps a mode name to a PaletteMode.
func ParseMode(s string) (PaletteMode, error) {
	m := PaletteMode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case "":
		return ModeSampled, nil
	case ModeSampled, ModeBuiltin, ModeSingle:
		return m, nil
	}
	return "", perrors.New(perrors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: sampled, builtin, single)", s)
}

// UsesStore reports whether the mode reads the palette store.
func (m PaletteMode) UsesStore() bool {
	return m != ModeBuiltin
}

// =============================================================================
// Config
// =============================================================================

// Range is a closed numeric interval. Min > Max is allowed and sampled as is.
type Range struct {
	Min float64 `json:"min" toml:"min"`
	Max float64 `json:"max" toml:"max"`
}

// String formats the range as "min..max".
func (r Range) String() string {
	return fmt.Sprintf("%.2f..%.2f", r.Min, r.Max)
}

// Config holds everything one poster depends on. It is constructed per
// invocation and never persisted by this package.
type Config struct {
	Layers     int         `json:"layers"`
	Seed       int64       `json:"seed"`
	Wobble     Range       `json:"wobble"`
	Radius     Range       `json:"radius"`
	Mode       PaletteMode `json:"mode"`
	SampleSize int         `json:"sample_size"`
	Color      string      `json:"color,omitempty"` // single-color mode

	// Canvas settings; zero values fall back to the defaults above.
	Width      int    `json:"width"`
	Background string `json:"background"`
	Title      string `json:"title"`
	Caption    string `json:"caption"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	c := Config{
		Layers: DefaultLayers,
		Wobble: DefaultWobble,
		Radius: DefaultRadius,
	}
	c.SetDefaults()
	return c
}

// SetDefaults fills zero-valued canvas and mode fields. Layers, Seed and the
// ranges are left alone: zero is a legitimate value for each of them.
func (c *Config) SetDefaults() {
	if c.Mode == "" {
		c.Mode = ModeSampled
	}
	if c.SampleSize == 0 {
		c.SampleSize = DefaultSampleSize
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Background == "" {
		c.Background = DefaultBackground
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
}

// Height returns the canvas height for the fixed aspect ratio.
func (c Config) Height() int {
	w := c.Width
	if w == 0 {
		w = DefaultWidth
	}
	return int(float64(w)/AspectRatio + 0.5)
}

// CaptionText returns the caption, deriving one from the seed when unset.
func (c Config) CaptionText() string {
	if c.Caption != "" {
		return c.Caption
	}
	return fmt.Sprintf("%d blobs · seed %d", c.Layers, c.Seed)
}
