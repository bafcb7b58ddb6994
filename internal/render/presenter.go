package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// Info panel geometry. The panel sits at the top-left corner of the scaled
// image, not of the surface.
const (
	infoPanelWidth  = 150
	infoPanelHeight = 40
)

var surfaceBackground = color.RGBA{16, 16, 16, 255}

// FitRect computes where a srcW x srcH plane lands on a dstW x dstH surface:
// a uniform scale preserving the aspect ratio, fit to the constraining
// dimension, centered with equal margins on both axes.
func FitRect(srcW, srcH, dstW, dstH int) image.Rectangle {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return image.Rectangle{}
	}

	scale := float64(dstW) / float64(srcW)
	if s := float64(dstH) / float64(srcH); s < scale {
		scale = s
	}

	w := int(float64(srcW) * scale)
	h := int(float64(srcH) * scale)
	x := (dstW - w) / 2
	y := (dstH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// Present scales and centers a composited plane onto a surface of the given
// size and draws the info panel over its top-left corner. A nil plane yields
// a nil surface; callers treat that as "nothing to display", never as an
// error.
func Present(plane *image.RGBA, dstW, dstH int, orientation string, index, total int) *image.RGBA {
	if plane == nil || dstW <= 0 || dstH <= 0 {
		return nil
	}

	surface := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	fill(surface, surfaceBackground)

	target := FitRect(plane.Bounds().Dx(), plane.Bounds().Dy(), dstW, dstH)
	xdraw.ApproxBiLinear.Scale(surface, target, plane, plane.Bounds(), xdraw.Over, nil)

	drawInfoPanel(surface, target.Min.X, target.Min.Y, orientation, index, total)
	return surface
}

// drawInfoPanel renders the fixed-size orientation/slice readout.
func drawInfoPanel(surface *image.RGBA, x, y int, orientation string, index, total int) {
	dc := gg.NewContextForRGBA(surface)

	dc.SetRGBA(0, 0, 0, 0.55)
	dc.DrawRectangle(float64(x), float64(y), infoPanelWidth, infoPanelHeight)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	dc.DrawString(orientation, float64(x)+6, float64(y)+16)
	dc.DrawString(fmt.Sprintf("slice %d / %d", index+1, total), float64(x)+6, float64(y)+32)
}

func fill(img *image.RGBA, c color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}
