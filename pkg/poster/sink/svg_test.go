package sink

import (
	"strings"
	"testing"
)

func TestRenderSVG(t *testing.T) {
	p := testPoster(t, 8)
	out := string(RenderSVG(p))

	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "<svg") {
		t.Fatalf("output is not an SVG document:\n%.200s", out)
	}
	if n := strings.Count(out, `id="blob-`); n != 8 {
		t.Errorf("found %d blob polygons, want 8", n)
	}
	if !strings.Contains(out, `viewBox="0 0 6000 8000"`) {
		t.Error("missing scaled viewBox")
	}
	if !strings.Contains(out, "fill-opacity:") {
		t.Error("blobs are not translucent")
	}
	if !strings.Contains(out, ">Abstract Poster</text>") {
		t.Error("missing title text")
	}
	if !strings.Contains(out, ">8 blobs · seed 42</text>") {
		t.Error("missing caption text")
	}
}

func TestRenderSVGDrawOrder(t *testing.T) {
	out := string(RenderSVG(testPoster(t, 3)))

	bg := strings.Index(out, "<rect")
	first := strings.Index(out, `id="blob-0"`)
	last := strings.Index(out, `id="blob-2"`)
	title := strings.Index(out, "<text")
	if !(bg < first && first < last && last < title) {
		t.Errorf("draw order wrong: rect=%d blob0=%d blob2=%d text=%d", bg, first, last, title)
	}
}

func TestRenderSVGScale(t *testing.T) {
	out := string(RenderSVG(testPoster(t, 1), WithSVGScale(2)))
	if !strings.Contains(out, `width="1200"`) || !strings.Contains(out, `height="1600"`) {
		t.Errorf("scaled SVG has wrong outer size:\n%.300s", out)
	}
}

func TestRenderSVGOpacity(t *testing.T) {
	out := string(RenderSVG(redSquarePoster()))
	if !strings.Contains(out, "fill:#ff0000;fill-opacity:0.502") {
		t.Errorf("unexpected blob style:\n%s", out)
	}
}
