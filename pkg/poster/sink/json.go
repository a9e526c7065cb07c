package sink

import (
	"encoding/json"

	"github.com/matzehuels/blobposter/pkg/poster"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	points bool
}

// WithJSONPoints includes every blob's outline in the output. Without it only
// the parameters each blob was drawn from are exported.
func WithJSONPoints() JSONOption { return func(r *jsonRenderer) { r.points = true } }

type jsonOutput struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Background string         `json:"background"`
	Config     poster.Config  `json:"config"`
	Colors     []jsonColor    `json:"colors"`
	Layers     []jsonLayer    `json:"layers"`
	Labels     []poster.Label `json:"labels"`
}

type jsonColor struct {
	Name string  `json:"name"`
	Hex  string  `json:"hex"`
	R    float64 `json:"r"`
	G    float64 `json:"g"`
	B    float64 `json:"b"`
}

type jsonLayer struct {
	Center poster.Point   `json:"center"`
	Radius float64        `json:"radius"`
	Wobble float64        `json:"wobble"`
	Color  string         `json:"color"`
	Hex    string         `json:"hex"`
	Alpha  float64        `json:"alpha"`
	Points []poster.Point `json:"points,omitempty"`
}

// RenderJSON exports the composed poster as a pretty-printed JSON document.
// Together with the recorded config and seed it is enough to regenerate the
// same poster.
func RenderJSON(p *poster.Poster, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:      p.Width,
		Height:     p.Height,
		Background: hexOf(p.Background),
		Config:     p.Config,
		Colors:     make([]jsonColor, 0, len(p.Colors)),
		Layers:     make([]jsonLayer, 0, len(p.Layers)),
		Labels:     p.Labels,
	}
	for _, c := range p.Colors {
		out.Colors = append(out.Colors, jsonColor{Name: c.Name, Hex: c.Hex(), R: c.R, G: c.G, B: c.B})
	}
	for _, l := range p.Layers {
		jl := jsonLayer{
			Center: l.Center,
			Radius: l.Radius,
			Wobble: l.Wobble,
			Color:  l.Color.Name,
			Hex:    l.Color.Hex(),
			Alpha:  l.Alpha,
		}
		if r.points {
			jl.Points = l.Shape
		}
		out.Layers = append(out.Layers, jl)
	}

	return json.MarshalIndent(out, "", "  ")
}
