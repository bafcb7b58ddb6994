package render

import (
	"image"
	"image/color"
)

// HighlightColor is the fixed color substituted for segmented pixels:
// full red at partial alpha. Overlay pixels replace the grayscale value
// outright rather than blending with it.
var HighlightColor = color.RGBA{R: 255, G: 0, B: 0, A: 180}

// Composite maps a raw intensity plane through the window and overlays the
// segmentation labels. plane is row-major with the given width and height;
// maskPlane is either nil (no overlay) or parallel to plane. With an all-zero
// mask the output equals the pure grayscale composite.
func Composite(plane []float32, maskPlane []uint8, width, height int, w Window) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for i, v := range plane {
		o := i * 4
		if maskPlane != nil && i < len(maskPlane) && maskPlane[i] > 0 {
			img.Pix[o+0] = HighlightColor.R
			img.Pix[o+1] = HighlightColor.G
			img.Pix[o+2] = HighlightColor.B
			img.Pix[o+3] = HighlightColor.A
			continue
		}
		g := MapIntensity(float64(v), w)
		img.Pix[o+0] = g
		img.Pix[o+1] = g
		img.Pix[o+2] = g
		img.Pix[o+3] = 255
	}
	return img
}
