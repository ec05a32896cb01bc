package main

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/minmatrix/pkg/render"
	"github.com/taigrr/minmatrix/pkg/scenes"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    render.Color
		wantErr bool
	}{
		{"30,30,40", render.RGB(30, 30, 40), false},
		{"0,0,0", render.ColorBlack, false},
		{"red", render.Color{}, true},
		{"1,2", render.Color{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("parseColor(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	*width, *height, *frames, *snapshotScale = 32, 20, 3, 2

	scene, err := scenes.ByName("spinner", nil)
	if err != nil {
		t.Fatal(err)
	}
	player := scenes.NewPlayer(scene, 30)
	path := filepath.Join(t.TempDir(), "spinner.png")

	if err := snapshot(player, path); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if player.Frame() != 3 {
		t.Errorf("rendered %d frames, want 3", player.Frame())
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
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 40 {
		t.Errorf("image is %dx%d, want 64x40", b.Dx(), b.Dy())
	}
}

func TestSnapshotRejectsEmptySize(t *testing.T) {
	*width, *height, *frames = 0, 20, 1
	t.Cleanup(func() { *width = 160 })

	scene, _ := scenes.ByName("static", nil)
	if err := snapshot(scenes.NewPlayer(scene, 30), filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Error("snapshot with zero width should fail")
	}
}

func TestRunHeadlessWithGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	*sceneName, *snapshotPath, *showGrid, *fov = "static", path, true, 60
	*width, *height, *frames, *snapshotScale = 32, 20, 1, 1
	t.Cleanup(func() {
		*sceneName, *snapshotPath, *showGrid, *fov = "orbit", "", false, 90
		*width, *height, *snapshotScale = 160, 96, 4
	})

	if err := run(); err != nil {
		t.Fatalf("run: %v", err)
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

	grid := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) == scenes.GridColor {
				grid++
			}
		}
	}
	if grid == 0 {
		t.Error("snapshot has no grid pixels")
	}
}
