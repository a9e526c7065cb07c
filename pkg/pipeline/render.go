package pipeline

import (
	"fmt"

	"github.com/matzehuels/blobposter/pkg/poster"
	"github.com/matzehuels/blobposter/pkg/poster/sink"
)

// Render generates output artifacts in the requested formats.
func Render(p *poster.Poster, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		data, err := renderFormat(p, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(p *poster.Poster, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatPNG:
		return sink.RenderPNG(p, sink.WithScale(opts.Scale))
	case FormatSVG:
		return sink.RenderSVG(p, sink.WithSVGScale(opts.Scale)), nil
	case FormatPDF:
		return sink.RenderPDF(p, sink.WithSVGScale(opts.Scale))
	case FormatJSON:
		var jsonOpts []sink.JSONOption
		if opts.Points {
			jsonOpts = append(jsonOpts, sink.WithJSONPoints())
		}
		return sink.RenderJSON(p, jsonOpts...)
	}
	return nil, ValidateFormat(format)
}
