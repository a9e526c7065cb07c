package fonts

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestFont(t *testing.T) {
	for _, w := range []Weight{Regular, Bold} {
		f, err := Font(w)
		if err != nil {
			t.Fatalf("Font(%d) error: %v", w, err)
		}
		if f == nil {
			t.Fatalf("Font(%d) returned nil", w)
		}
	}
}

func TestFace(t *testing.T) {
	face := Face(Regular, 24)
	if face == nil {
		t.Fatal("Face() returned nil")
	}
	if face == basicfont.Face7x13 {
		t.Error("Face() fell back to basicfont with a valid size")
	}
	if h := face.Metrics().Height.Ceil(); h < 20 {
		t.Errorf("24px face has line height %d", h)
	}
}

func TestFaceFallback(t *testing.T) {
	if Face(Regular, 0) != basicfont.Face7x13 {
		t.Error("Face() with size 0 should fall back to basicfont")
	}
}
