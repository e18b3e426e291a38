package uvmap

import (
	"image"
	"image/color"
	"testing"
)

// gradientImage gives every pixel of a w x h image a distinct color.
func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}

func TestRemapRoundTrip(t *testing.T) {
	g := Geometry{Width: 96, Height: 64, CellWidth: 16, CellHeight: 16}
	src := gradientImage(g.Width, g.Height)

	fwd, err := Generate(42, g)
	if err != nil {
		t.Fatal(err)
	}
	rev, err := GenerateReverse(42, g, Region{})
	if err != nil {
		t.Fatal(err)
	}

	shuffled := Remap(fwd, src, Nearest)
	if equalImages(shuffled, src) {
		t.Fatal("shuffled image equals the source")
	}
	restored := Remap(rev, shuffled, Nearest, WithWorkers(3))
	if !equalImages(restored, src) {
		t.Error("unshuffle did not restore the source image")
	}
}

func TestRemapMovesCells(t *testing.T) {
	g := Geometry{Width: 32, Height: 16, CellWidth: 16, CellHeight: 16}
	src := gradientImage(32, 16)
	f, _ := Generate(42, g)

	dst := Remap(f, src, Nearest)
	// Seed 42 swaps the two halves.
	if got, want := dst.NRGBAAt(0, 5), src.NRGBAAt(16, 5); got != want {
		t.Errorf("dst(0,5) = %v, want src(16,5) = %v", got, want)
	}
	if got, want := dst.NRGBAAt(31, 0), src.NRGBAAt(15, 0); got != want {
		t.Errorf("dst(31,0) = %v, want src(15,0) = %v", got, want)
	}
}

func TestRemapScalesToSourceSize(t *testing.T) {
	f, _ := Generate(0, Geometry{Width: 4, Height: 4, CellWidth: 4, CellHeight: 4})
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 200, A: 255})

	dst := Remap(f, src, Nearest)
	if dst.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v, want 4x4", dst.Bounds())
	}
	if got := dst.NRGBAAt(3, 3).R; got != 200 {
		t.Errorf("dst(3,3).R = %d, want 200", got)
	}
	if got := dst.NRGBAAt(0, 0).R; got != 0 {
		t.Errorf("dst(0,0).R = %d, want 0", got)
	}
}

func TestRemapBilinearAtPixelCenters(t *testing.T) {
	g := Geometry{Width: 8, Height: 8, CellWidth: 8, CellHeight: 8}
	f, _ := Generate(1, g)
	src := gradientImage(8, 8)
	if dst := Remap(f, src, Bilinear); !equalImages(dst, src) {
		t.Error("bilinear sampling at pixel centers should reproduce the source")
	}
}

func TestRemapOffsetSourceBounds(t *testing.T) {
	g := Geometry{Width: 4, Height: 4, CellWidth: 4, CellHeight: 4}
	f, _ := Generate(0, g)
	src := gradientImage(8, 8).SubImage(image.Rect(4, 4, 8, 8))

	dst := Remap(f, src, Nearest)
	if got, want := dst.NRGBAAt(0, 0), src.(*image.NRGBA).NRGBAAt(4, 4); got != want {
		t.Errorf("dst(0,0) = %v, want %v", got, want)
	}
}

func TestParseInterpolation(t *testing.T) {
	tests := []struct {
		in      string
		want    Interpolation
		wantErr bool
	}{
		{"nearest", Nearest, false},
		{"NEAREST", Nearest, false},
		{"", Nearest, false},
		{"bilinear", Bilinear, false},
		{"linear", Bilinear, false},
		{"cubic", Nearest, true},
	}
	for _, tt := range tests {
		got, err := ParseInterpolation(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInterpolation(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInterpolation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if Nearest.String() != "nearest" || Bilinear.String() != "bilinear" {
		t.Errorf("String() = %q, %q", Nearest.String(), Bilinear.String())
	}
}

func equalImages(a, b *image.NRGBA) bool {
	if a.Bounds().Size() != b.Bounds().Size() {
		return false
	}
	w, h := a.Bounds().Dx(), a.Bounds().Dy()
	for y := range h {
		for x := range w {
			if a.NRGBAAt(a.Rect.Min.X+x, a.Rect.Min.Y+y) != b.NRGBAAt(b.Rect.Min.X+x, b.Rect.Min.Y+y) {
				return false
			}
		}
	}
	return true
}

func BenchmarkRemap1080p(b *testing.B) {
	g := Geometry{Width: 1920, Height: 1080, CellWidth: 16, CellHeight: 16}
	f, _ := Generate(42, g)
	src := gradientImage(1920, 1080)
	b.ReportAllocs()
	for b.Loop() {
		_ = Remap(f, src, Nearest, WithWorkers(0))
	}
}
