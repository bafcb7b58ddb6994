// Package viewport provides the two display surfaces: the multi-planar
// slice view and the 3D model view.
package viewport

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"volview/internal/app"
	"volview/internal/render"
)

// SliceView blits the composited slice raster onto its surface. The raster
// generator runs synchronously on every refresh and resize, so slice,
// orientation, and window changes repaint immediately.
type SliceView struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster
}

// NewSliceView builds the slice surface and subscribes it to the state
// events that require a repaint.
func NewSliceView(state *app.State) *SliceView {
	sv := &SliceView{state: state}
	sv.raster = fynecanvas.NewRaster(sv.draw)
	sv.ExtendBaseWidget(sv)

	redraw := func(interface{}) { sv.Refresh() }
	state.On(app.EventVolumeLoaded, redraw)
	state.On(app.EventMaskLoaded, redraw)
	state.On(app.EventOrientationChanged, redraw)
	state.On(app.EventSliceChanged, redraw)
	state.On(app.EventWindowChanged, redraw)

	return sv
}

// CreateRenderer implements fyne.Widget.
func (sv *SliceView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sv.raster)
}

// MinSize keeps the surface from collapsing inside splits.
func (sv *SliceView) MinSize() fyne.Size {
	return fyne.NewSize(320, 320)
}

// draw produces the surface raster at the requested pixel size. With no
// volume loaded it paints a plain placeholder, never an error.
func (sv *SliceView) draw(w, h int) image.Image {
	plane, maskPlane, pw, ph := sv.state.CurrentSlice()
	if plane == nil {
		return image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	}

	composited := render.Composite(plane, maskPlane, pw, ph, sv.state.Window())
	surface := render.Present(composited, w, h,
		sv.state.Orientation().String(), sv.state.SliceIndex(), sv.state.SliceCount())
	if surface == nil {
		return image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	}
	return surface
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
