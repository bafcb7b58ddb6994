// Package panels provides the control panels: slicing, mesh appearance, and
// pipeline execution.
package panels

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"volview/internal/app"
	"volview/internal/render"
	"volview/internal/volume"
)

// SlicePanel holds the multi-planar controls: orientation, slice index, and
// intensity window. Every handler runs synchronously and no-ops gracefully
// before a volume has loaded.
type SlicePanel struct {
	state *app.State

	orientation *widget.RadioGroup
	sliceSlider *widget.Slider
	sliceLabel  *widget.Label
	centerEntry *widget.Slider
	widthEntry  *widget.Slider
	windowLabel *widget.Label
	presets     *widget.Select

	container *fyne.Container

	// Guards against feedback loops while syncing controls from state.
	syncing bool
}

// NewSlicePanel builds the panel and subscribes it to state changes.
func NewSlicePanel(state *app.State) *SlicePanel {
	p := &SlicePanel{state: state}

	names := make([]string, len(volume.Orientations))
	for i, o := range volume.Orientations {
		names[i] = o.String()
	}
	p.orientation = widget.NewRadioGroup(names, func(selected string) {
		if p.syncing {
			return
		}
		for _, o := range volume.Orientations {
			if o.String() == selected {
				p.state.SetOrientation(o)
				return
			}
		}
	})
	p.orientation.SetSelected(volume.Axial.String())
	p.orientation.Horizontal = true

	p.sliceLabel = widget.NewLabel("slice - / -")
	p.sliceSlider = widget.NewSlider(0, 0)
	p.sliceSlider.Step = 1
	p.sliceSlider.OnChanged = func(v float64) {
		if p.syncing {
			return
		}
		p.state.SetSliceIndex(int(v))
	}

	p.windowLabel = widget.NewLabel(windowText(state.Window()))
	p.centerEntry = widget.NewSlider(-1000, 1000)
	p.centerEntry.Step = 1
	p.centerEntry.Value = state.Window().Center
	p.centerEntry.OnChanged = func(v float64) {
		if p.syncing {
			return
		}
		p.state.SetWindow(v, p.state.Window().Width)
	}

	p.widthEntry = widget.NewSlider(1, 4000)
	p.widthEntry.Step = 1
	p.widthEntry.Value = state.Window().Width
	p.widthEntry.OnChanged = func(v float64) {
		if p.syncing {
			return
		}
		p.state.SetWindow(p.state.Window().Center, v)
	}

	presetNames := make([]string, len(render.Presets))
	for i, preset := range render.Presets {
		presetNames[i] = preset.Name
	}
	p.presets = widget.NewSelect(presetNames, func(name string) {
		if p.syncing {
			return
		}
		for _, preset := range render.Presets {
			if preset.Name == name {
				p.state.SetWindow(preset.Window.Center, preset.Window.Width)
				return
			}
		}
	})

	autoBtn := widget.NewButton("Auto window", func() {
		p.state.AutoWindow()
	})

	p.container = container.NewVBox(
		widget.NewLabelWithStyle("Plane", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		p.orientation,
		p.sliceLabel,
		p.sliceSlider,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Window", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		p.windowLabel,
		widget.NewLabel("Center"),
		p.centerEntry,
		widget.NewLabel("Width"),
		p.widthEntry,
		container.NewHBox(p.presets, autoBtn),
	)

	state.On(app.EventVolumeLoaded, func(interface{}) { p.sync() })
	state.On(app.EventOrientationChanged, func(interface{}) { p.sync() })
	state.On(app.EventSliceChanged, func(interface{}) { p.sync() })
	state.On(app.EventWindowChanged, func(interface{}) { p.sync() })

	return p
}

// Container returns the panel's root object.
func (p *SlicePanel) Container() fyne.CanvasObject {
	return p.container
}

// sync pulls the panel controls up to date with the state.
func (p *SlicePanel) sync() {
	p.syncing = true
	defer func() { p.syncing = false }()

	count := p.state.SliceCount()
	index := p.state.SliceIndex()

	if count > 0 {
		p.sliceSlider.Max = float64(count - 1)
		p.sliceSlider.SetValue(float64(index))
		p.sliceLabel.SetText(fmt.Sprintf("slice %d / %d", index+1, count))
	} else {
		p.sliceSlider.Max = 0
		p.sliceLabel.SetText("slice - / -")
	}

	w := p.state.Window()
	p.centerEntry.SetValue(w.Center)
	p.widthEntry.SetValue(w.Width)
	p.windowLabel.SetText(windowText(w))
	p.orientation.SetSelected(p.state.Orientation().String())
}

func windowText(w render.Window) string {
	return fmt.Sprintf("C %.0f / W %.0f", w.Center, w.Width)
}
