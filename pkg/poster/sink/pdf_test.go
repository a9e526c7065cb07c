package sink

import (
	"bytes"
	"testing"

	"github.com/matzehuels/blobposter/pkg/render"
)

func TestRenderPDF(t *testing.T) {
	if !render.Available() {
		t.Skip("rsvg-convert not installed")
	}

	data, err := RenderPDF(testPoster(t, 4))
	if err != nil {
		t.Fatalf("RenderPDF() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF: %q", data[:min(len(data), 16)])
	}
}
