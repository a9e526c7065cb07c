package poster

import "math"

// Point is a position in unit canvas coordinates: (0,0) is the bottom-left
// corner and (1,1) the top-right.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Blob is a closed polygon approximating a circle with per-point radius
// jitter. The last point connects back to the first.
type Blob []Point

// NewBlob samples n points at even angular steps around center. Each point's
// distance from center is radius*(1 + wobble*(u-0.5)) for a fresh uniform u,
// so it stays within radius*(1 ± wobble/2).
func NewBlob(center Point, radius, wobble float64, n int, src Source) Blob {
	b := make(Blob, n)
	step := 2 * math.Pi / float64(n)
	for i := range b {
		theta := float64(i) * step
		r := radius * (1 + wobble*(src.Float64()-0.5))
		b[i] = Point{
			X: center.X + r*math.Cos(theta),
			Y: center.Y + r*math.Sin(theta),
		}
	}
	return b
}

// Bounds returns the axis-aligned bounding box of the blob.
func (b Blob) Bounds() (lo, hi Point) {
	if len(b) == 0 {
		return Point{}, Point{}
	}
	lo, hi = b[0], b[0]
	for _, p := range b[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi
}
