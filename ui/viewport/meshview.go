package viewport

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"volview/internal/scene"
)

// MeshView displays the frames produced by the scene scheduler. The
// scheduler redraws continuously whether or not a mesh is loaded; this
// widget only forwards its surface size and swaps frames in.
type MeshView struct {
	widget.BaseWidget

	scheduler *scene.Scheduler
	img       *fynecanvas.Image
}

// NewMeshView builds the 3D surface. Wire the scheduler's onFrame callback
// to SetFrame.
func NewMeshView(scheduler *scene.Scheduler) *MeshView {
	mv := &MeshView{scheduler: scheduler}
	mv.img = fynecanvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 640, 480)))
	mv.img.FillMode = fynecanvas.ImageFillContain
	mv.img.ScaleMode = fynecanvas.ImageScaleFastest
	mv.ExtendBaseWidget(mv)
	return mv
}

// CreateRenderer implements fyne.Widget.
func (mv *MeshView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(mv.img)
}

// MinSize keeps the surface from collapsing inside splits.
func (mv *MeshView) MinSize() fyne.Size {
	return fyne.NewSize(320, 320)
}

// Resize forwards the new surface size to the render scheduler.
func (mv *MeshView) Resize(size fyne.Size) {
	mv.BaseWidget.Resize(size)
	if size.Width > 0 && size.Height > 0 {
		mv.scheduler.Resize(int(size.Width), int(size.Height))
	}
}

// SetFrame swaps in a freshly rendered frame. Called from the scheduler
// goroutine.
func (mv *MeshView) SetFrame(frame *image.RGBA) {
	mv.img.Image = frame
	fynecanvas.Refresh(mv.img)
}
