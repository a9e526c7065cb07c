// Package pipeline provides the generate → render pipeline behind every
// blobposter entry point.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Generate: compose a [poster.Poster] from the config and palette store
//  2. Render: turn it into one or more output formats (PNG, SVG, PDF, JSON)
//
// Generation is cheap and always runs; rendered artifacts are cached, keyed by
// the poster's inputs and the output options.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	opts := pipeline.Options{
//	    Config:  cfg,
//	    Formats: []string{"png", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts, entries)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blobposter/pkg/cache"
	perrors "github.com/matzehuels/blobposter/pkg/errors"
	"github.com/matzehuels/blobposter/pkg/poster"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatPNG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	Config  poster.Config `json:"config"`
	Formats []string      `json:"formats,omitempty"`
	Scale   float64       `json:"scale,omitempty"`  // raster and SVG size multiplier
	Points  bool          `json:"points,omitempty"` // include blob outlines in JSON
	Refresh bool          `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Poster is the composed scene.
	Poster *poster.Poster

	// PosterHash identifies the poster's inputs (config and working colors).
	PosterHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Layers       int
	Colors       int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return perrors.New(perrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, svg, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaults fills in the format list, scale, poster defaults and a discard
// logger.
func (o *Options) SetDefaults() {
	o.Config.SetDefaults()
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks the formats and palette mode.
func (o *Options) Validate() error {
	o.SetDefaults()
	if _, err := poster.ParseMode(string(o.Config.Mode)); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// ArtifactKeyOpts returns cache key options for one format. Options a format
// ignores are left out so they don't split the cache.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatJSON:
		k.Points = o.Points
	case FormatPNG, FormatSVG, FormatPDF:
		k.Scale = o.Scale
	}
	return k
}
