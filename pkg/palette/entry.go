// Package palette stores named RGB colors in a flat CSV file.
//
// # Overview
//
// A palette is an ordered list of [Entry] values. Names act as keys for
// lookups, but the store never enforces uniqueness: [Store.Add] always
// appends, so duplicates can accumulate and later lookups resolve to the
// first match.
//
// # Persistence
//
// [Store] is backed by a single comma-separated file with a header row
// (`name,r,g,b` or `Name,R,G,B`, see [HeaderStyle]). Every mutation reads
// the whole file, modifies the slice in memory and rewrites the whole file.
// There is no locking, so concurrent writers race and the last one wins.
//
//	store := palette.NewStore("palette.csv")
//	entries, err := store.Read() // creates the file with Defaults() if missing
//	err = store.Add("ocean", 0.1, 0.3, 0.6)
//	err = store.Update("ocean", palette.Update{R: palette.Channel(0.2)})
//	n, err := store.Delete("ocean")
//
// # Built-in palette
//
// [Builtin] returns a fixed palette that needs no file at all. The poster
// generator uses it in its built-in palette mode.
package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Entry is a single named color. Channels are nominally in [0, 1] but are
// stored exactly as given.
type Entry struct {
	Name string  `json:"name"`
	R    float64 `json:"r"`
	G    float64 `json:"g"`
	B    float64 `json:"b"`
}

// NewEntry builds an entry from channel values.
func NewEntry(name string, r, g, b float64) Entry {
	return Entry{Name: name, R: r, G: g, B: b}
}

// FromHex parses a "#rrggbb" (or "#rgb") string into an entry.
func FromHex(name, hex string) (Entry, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Entry{}, fmt.Errorf("parse %q: %w", hex, err)
	}
	return Entry{Name: name, R: c.R, G: c.G, B: c.B}, nil
}

// Hex formats the entry as "#rrggbb", clamping channels to [0, 1].
func (e Entry) Hex() string {
	return colorful.Color{R: e.R, G: e.G, B: e.B}.Clamped().Hex()
}

// RGBA returns the entry as a color with the given opacity in [0, 1].
// Channels outside [0, 1] are clamped.
func (e Entry) RGBA(alpha float64) color.NRGBA {
	return color.NRGBA{
		R: to8(e.R),
		G: to8(e.G),
		B: to8(e.B),
		A: to8(alpha),
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(max(0, min(v, 1)) * 255))
}

// Defaults returns the seed set written to a store that does not exist yet.
func Defaults() []Entry {
	return []Entry{
		{Name: "sky", R: 0.4, G: 0.7, B: 1.0},
		{Name: "sun", R: 1.0, G: 0.8, B: 0.2},
		{Name: "forest", R: 0.2, G: 0.6, B: 0.3},
	}
}

// Builtin returns the fixed palette used when no store is involved.
func Builtin() []Entry {
	return []Entry{
		{Name: "coral", R: 0.96, G: 0.45, B: 0.37},
		{Name: "mustard", R: 0.93, G: 0.73, B: 0.20},
		{Name: "teal", R: 0.13, G: 0.55, B: 0.55},
		{Name: "navy", R: 0.12, G: 0.20, B: 0.40},
		{Name: "blush", R: 0.95, G: 0.71, B: 0.72},
		{Name: "sage", R: 0.60, G: 0.70, B: 0.55},
		{Name: "plum", R: 0.46, G: 0.25, B: 0.45},
	}
}

// Find returns the index of the first entry named name, or -1.
func Find(entries []Entry, name string) int {
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}
