package cli

import (
	"github.com/spf13/pflag"

	"github.com/matzehuels/blobposter/pkg/poster"
)

// posterFlags are the poster settings that can be overridden on the command
// line. Only flags the user actually set replace config file values.
type posterFlags struct {
	layers     int
	seed       int64
	wobbleMin  float64
	wobbleMax  float64
	radiusMin  float64
	radiusMax  float64
	mode       string
	sampleSize int
	color      string
	width      int
	title      string
	caption    string
	background string
}

func (f *posterFlags) register(fs *pflag.FlagSet) {
	d := poster.DefaultConfig()
	fs.IntVarP(&f.layers, "layers", "n", d.Layers, "number of blobs")
	fs.Int64VarP(&f.seed, "seed", "s", d.Seed, "random seed")
	fs.Float64Var(&f.wobbleMin, "wobble-min", d.Wobble.Min, "minimum wobble factor")
	fs.Float64Var(&f.wobbleMax, "wobble-max", d.Wobble.Max, "maximum wobble factor")
	fs.Float64Var(&f.radiusMin, "radius-min", d.Radius.Min, "minimum blob radius (fraction of width)")
	fs.Float64Var(&f.radiusMax, "radius-max", d.Radius.Max, "maximum blob radius (fraction of width)")
	fs.StringVarP(&f.mode, "mode", "m", string(d.Mode), "palette mode: sampled, builtin, single")
	fs.IntVar(&f.sampleSize, "sample", d.SampleSize, "colors sampled from the palette in sampled mode")
	fs.StringVarP(&f.color, "color", "c", "", "palette entry used in single mode")
	fs.IntVar(&f.width, "width", d.Width, "canvas width in pixels (height follows 3:4)")
	fs.StringVar(&f.title, "title", d.Title, "poster title")
	fs.StringVar(&f.caption, "caption", "", `caption text (default "<n> blobs · seed <s>")`)
	fs.StringVar(&f.background, "background", d.Background, "background color as #rrggbb")
}

// apply overrides cfg with every flag that was set explicitly.
func (f *posterFlags) apply(fs *pflag.FlagSet, cfg *poster.Config) error {
	if fs.Changed("layers") {
		cfg.Layers = f.layers
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("wobble-min") {
		cfg.Wobble.Min = f.wobbleMin
	}
	if fs.Changed("wobble-max") {
		cfg.Wobble.Max = f.wobbleMax
	}
	if fs.Changed("radius-min") {
		cfg.Radius.Min = f.radiusMin
	}
	if fs.Changed("radius-max") {
		cfg.Radius.Max = f.radiusMax
	}
	if fs.Changed("mode") {
		m, err := poster.ParseMode(f.mode)
		if err != nil {
			return err
		}
		cfg.Mode = m
	}
	if fs.Changed("sample") {
		cfg.SampleSize = f.sampleSize
	}
	if fs.Changed("color") {
		cfg.Color = f.color
		// naming a color without a mode means single-color mode
		if !fs.Changed("mode") {
			cfg.Mode = poster.ModeSingle
		}
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("title") {
		cfg.Title = f.title
	}
	if fs.Changed("caption") {
		cfg.Caption = f.caption
	}
	if fs.Changed("background") {
		cfg.Background = f.background
	}
	return nil
}
