package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestFramebufferPixels(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Clear(ColorBlue)

	fb.SetPixel(1, 2, ColorRed)
	fb.SetPixel(-1, 0, ColorRed) // Ignored
	fb.SetPixel(4, 0, ColorRed)  // Ignored

	if got := fb.GetPixel(1, 2); got != ColorRed {
		t.Errorf("GetPixel(1, 2) = %v, want red", got)
	}
	if got := fb.GetPixel(0, 0); got != ColorBlue {
		t.Errorf("GetPixel(0, 0) = %v, want blue", got)
	}
	if got := fb.GetPixel(10, 10); got != (Color{}) {
		t.Errorf("out of bounds GetPixel = %v, want zero", got)
	}
}

func TestFramebufferScaled(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.Clear(ColorBlack)
	fb.SetPixel(1, 0, ColorGreen)

	img := fb.Scaled(3)
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 6 {
		t.Fatalf("scaled bounds = %v, want 6x6", b)
	}
	for y := range 3 {
		for x := 3; x < 6; x++ {
			if got := img.RGBAAt(x, y); got != ColorGreen {
				t.Errorf("pixel (%d, %d) = %v, want green", x, y, got)
			}
		}
	}
	if got := img.RGBAAt(0, 5); got != ColorBlack {
		t.Errorf("pixel (0, 5) = %v, want black", got)
	}

	if b := fb.Scaled(0).Bounds(); b.Dx() != 2 {
		t.Errorf("scale 0 width = %d, want the original 2", b.Dx())
	}
}

func TestFramebufferSavePNG(t *testing.T) {
	fb := NewFramebuffer(5, 4)
	fb.Clear(ColorWhite)
	fb.SetPixel(0, 0, ColorRed)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fb.SavePNG(path, 2); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 8 {
		t.Errorf("bounds = %v, want 10x8", b)
	}
	if r, g, _, _ := img.At(1, 1).RGBA(); r != 0xffff || g != 0 {
		t.Errorf("pixel (1, 1) = %v, want red", img.At(1, 1))
	}
}

func TestFramebufferSavePNGError(t *testing.T) {
	fb := NewFramebuffer(1, 1)
	path := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := fb.SavePNG(path, 1); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}

func TestRGBAf(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b, a float64
		expected   Color
	}{
		{"red", 1, 0, 0, 1, Color{R: 255, G: 0, B: 0, A: 255}},
		{"clamped", 2, -1, 0.5, 1, Color{R: 255, G: 0, B: 128, A: 255}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RGBAf(tc.r, tc.g, tc.b, tc.a); got != tc.expected {
				t.Errorf("RGBAf = %v, want %v", got, tc.expected)
			}
		})
	}
}
