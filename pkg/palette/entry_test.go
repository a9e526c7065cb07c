package palette

import (
	"image/color"
	"testing"
)

func TestFromHex(t *testing.T) {
	e, err := FromHex("white", "#ffffff")
	if err != nil {
		t.Fatalf("FromHex() error: %v", err)
	}
	if e.R != 1 || e.G != 1 || e.B != 1 {
		t.Errorf("FromHex(#ffffff) = %+v, want all channels 1", e)
	}

	if _, err := FromHex("bad", "not-a-color"); err == nil {
		t.Error("FromHex should reject invalid input")
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		e    Entry
		want string
	}{
		{Entry{R: 1, G: 0, B: 0}, "#ff0000"},
		{Entry{R: 0, G: 0, B: 0}, "#000000"},
		{Entry{R: 2, G: -1, B: 1}, "#ff00ff"}, // clamped
	}
	for _, tt := range tests {
		if got := tt.e.Hex(); got != tt.want {
			t.Errorf("%+v.Hex() = %q, want %q", tt.e, got, tt.want)
		}
	}
}

func TestRGBA(t *testing.T) {
	e := Entry{R: 1, G: 0.5, B: 0}
	got := e.RGBA(0.5)
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 128}
	if got != want {
		t.Errorf("RGBA() = %v, want %v", got, want)
	}

	if got := (Entry{R: 1.5, G: -0.2, B: 0}).RGBA(1); got.R != 255 || got.G != 0 {
		t.Errorf("RGBA() should clamp out-of-range channels, got %v", got)
	}
}

func TestBuiltinIsStable(t *testing.T) {
	a, b := Builtin(), Builtin()
	if len(a) == 0 {
		t.Fatal("Builtin() is empty")
	}
	a[0].Name = "changed"
	if b[0].Name == "changed" {
		t.Error("Builtin() should return a fresh slice")
	}
}

func TestFind(t *testing.T) {
	entries := []Entry{{Name: "a"}, {Name: "b"}, {Name: "a"}}
	if got := Find(entries, "a"); got != 0 {
		t.Errorf("Find(a) = %d, want 0", got)
	}
	if got := Find(entries, "b"); got != 1 {
		t.Errorf("Find(b) = %d, want 1", got)
	}
	if got := Find(entries, "c"); got != -1 {
		t.Errorf("Find(c) = %d, want -1", got)
	}
}
