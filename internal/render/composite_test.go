package render

import (
	"image"
	"testing"
)

func TestCompositeGrayscale(t *testing.T) {
	w := NewWindow(0, 2)
	plane := []float32{-10, 0, 10, 1}

	img := Composite(plane, nil, 2, 2, w)
	if got := img.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", got)
	}

	wantGray := []uint8{0, 128, 255, 255}
	for i, g := range wantGray {
		o := i * 4
		if img.Pix[o] != g || img.Pix[o+1] != g || img.Pix[o+2] != g || img.Pix[o+3] != 255 {
			t.Errorf("pixel %d = %v, want gray %d", i, img.Pix[o:o+4], g)
		}
	}
}

func TestCompositeAllZeroMaskEqualsNoMask(t *testing.T) {
	w := NewWindow(40, 400)
	plane := []float32{-200, -40, 40, 120, 240, 500}

	plain := Composite(plane, nil, 3, 2, w)
	masked := Composite(plane, make([]uint8, len(plane)), 3, 2, w)

	for i := range plain.Pix {
		if plain.Pix[i] != masked.Pix[i] {
			t.Fatalf("pixel byte %d differs with all-zero mask: %d vs %d",
				i, plain.Pix[i], masked.Pix[i])
		}
	}
}

func TestCompositeOverlayReplacesPixel(t *testing.T) {
	w := NewWindow(40, 400)
	plane := []float32{100, 100}
	mask := []uint8{0, 3}

	img := Composite(plane, mask, 2, 1, w)

	if img.Pix[3] != 255 {
		t.Errorf("unmasked pixel alpha = %d, want 255", img.Pix[3])
	}
	got := img.Pix[4:8]
	want := []uint8{HighlightColor.R, HighlightColor.G, HighlightColor.B, HighlightColor.A}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("masked pixel = %v, want %v", got, want)
			break
		}
	}
}
