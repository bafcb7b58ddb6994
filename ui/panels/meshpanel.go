package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lucasb-eyer/go-colorful"

	"volview/internal/app"
	"volview/internal/mesh"
	"volview/internal/scene"
)

// MeshPanel holds the 3D model appearance and camera controls. Mutations go
// through the render scheduler, which owns the scene; every control is safe
// to use before a mesh has loaded (the scene no-ops).
type MeshPanel struct {
	scheduler *scene.Scheduler

	colorEntry *widget.Entry
	opacity    *widget.Slider
	wireframe  *widget.Check
	statsLabel *widget.Label

	container *fyne.Container
}

// NewMeshPanel builds the panel.
func NewMeshPanel(state *app.State, scheduler *scene.Scheduler) *MeshPanel {
	p := &MeshPanel{scheduler: scheduler}

	p.colorEntry = widget.NewEntry()
	p.colorEntry.SetPlaceHolder("#ccA18c")
	p.colorEntry.OnSubmitted = func(hex string) {
		col, err := colorful.Hex(hex)
		if err != nil {
			return
		}
		p.scheduler.Do(func(s *scene.Scene) { s.SetColor(col) })
	}

	p.opacity = widget.NewSlider(0, 1)
	p.opacity.Step = 0.05
	p.opacity.Value = 1.0
	p.opacity.OnChanged = func(v float64) {
		p.scheduler.Do(func(s *scene.Scene) { s.SetOpacity(v) })
	}

	p.wireframe = widget.NewCheck("Wireframe", func(on bool) {
		p.scheduler.Do(func(s *scene.Scene) { s.SetWireframeVisible(on) })
	})

	resetBtn := widget.NewButton("Reset view", func() {
		p.scheduler.Do(func(s *scene.Scene) { s.ResetView() })
	})
	zoomInBtn := widget.NewButton("+", func() {
		p.scheduler.Do(func(s *scene.Scene) { s.Camera.ZoomIn() })
	})
	zoomOutBtn := widget.NewButton("-", func() {
		p.scheduler.Do(func(s *scene.Scene) { s.Camera.ZoomOut() })
	})

	p.statsLabel = widget.NewLabel("no model loaded")

	p.container = container.NewVBox(
		widget.NewLabelWithStyle("Model", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		p.statsLabel,
		widget.NewLabel("Fill color"),
		p.colorEntry,
		widget.NewLabel("Opacity"),
		p.opacity,
		p.wireframe,
		container.NewHBox(resetBtn, widget.NewLabel("Zoom:"), zoomInBtn, zoomOutBtn),
	)

	state.On(app.EventMeshLoaded, func(data interface{}) {
		if m, ok := data.(*mesh.Mesh); ok {
			stats := m.Stats()
			p.statsLabel.SetText(fmt.Sprintf("%d faces, %d vertices", stats.Faces, stats.Vertices))
		}
	})

	return p
}

// Container returns the panel's root object.
func (p *MeshPanel) Container() fyne.CanvasObject {
	return p.container
}
