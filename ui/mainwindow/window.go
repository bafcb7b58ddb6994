// Package mainwindow provides the main application window.
package mainwindow

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"volview/internal/app"
	"volview/internal/client"
	"volview/internal/mesh"
	"volview/internal/pipeline"
	"volview/internal/scene"
	"volview/internal/version"
	"volview/internal/volume"
	"volview/ui/panels"
	"volview/ui/viewport"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app fyne.App
	log *logrus.Logger

	state      *app.State
	scheduler  *scene.Scheduler
	backend    *client.Client
	controller *pipeline.Controller

	sliceView *viewport.SliceView
	meshView  *viewport.MeshView

	slicePanel    *panels.SlicePanel
	meshPanel     *panels.MeshPanel
	pipelinePanel *panels.PipelinePanel

	statusBar *widget.Label
}

// New assembles the window around the injected components. The pipeline
// controller is constructed here because its status sink is the pipeline
// panel; everything else arrives ready-made from main.
func New(fyneApp fyne.App, state *app.State, scheduler *scene.Scheduler,
	backend *client.Client, log *logrus.Logger) *MainWindow {

	win := fyneApp.NewWindow("Volume Viewer")

	mw := &MainWindow{
		Window:    win,
		app:       fyneApp,
		log:       log,
		state:     state,
		scheduler: scheduler,
		backend:   backend,
	}

	mw.setupUI()
	mw.setupController()
	mw.setupMenus()
	mw.setupEventHandlers()

	win.Resize(fyne.NewSize(1280, 820))
	return mw
}

// MeshView exposes the 3D surface so main can wire the scheduler's frame
// callback to it.
func (mw *MainWindow) MeshView() *viewport.MeshView {
	return mw.meshView
}

// setupUI creates the main layout.
func (mw *MainWindow) setupUI() {
	mw.sliceView = viewport.NewSliceView(mw.state)
	mw.meshView = viewport.NewMeshView(mw.scheduler)

	mw.slicePanel = panels.NewSlicePanel(mw.state)
	mw.meshPanel = panels.NewMeshPanel(mw.state, mw.scheduler)
	mw.pipelinePanel = panels.NewPipelinePanel(nil, mw.Window)

	mw.statusBar = widget.NewLabel("Ready")

	side := container.NewVBox(
		mw.pipelinePanel.Container(),
		widget.NewSeparator(),
		mw.slicePanel.Container(),
		widget.NewSeparator(),
		mw.meshPanel.Container(),
	)

	tabs := container.NewAppTabs(
		container.NewTabItem("Slices", mw.sliceView),
		container.NewTabItem("3D Model", mw.meshView),
	)

	split := container.NewHSplit(container.NewVScroll(side), tabs)
	split.SetOffset(0.28)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil,
		nil,
		split,
	)

	mw.SetContent(content)
}

// setupController wires the pipeline controller into the state hub and the
// render scheduler. Artifact callbacks run on the controller's goroutine;
// they only call thread-safe entry points (state setters, scheduler
// commands).
func (mw *MainWindow) setupController() {
	sink := pipeline.MultiSink{mw.pipelinePanel, pipeline.LogSink{Log: mw.log}}

	mw.controller = pipeline.New(mw.backend, sink, mw.log, pipeline.Callbacks{
		OnVolume: func(v *volume.Volume) { mw.state.SetVolume(v) },
		OnMask:   func(m *volume.Mask) { mw.state.SetMask(m) },
		OnMesh:   mw.loadMesh,
		OnChange: func(s pipeline.Snapshot) {
			mw.pipelinePanel.SetSnapshot(s)
			mw.updateStatus(fmt.Sprintf("%s — %s", s.Stage, s.Message))
			mw.state.Emit(app.EventPipelineChanged, s)
		},
	})
	mw.pipelinePanel.SetController(mw.controller)
}

func (mw *MainWindow) loadMesh(m *mesh.Mesh) {
	mw.scheduler.Do(func(s *scene.Scene) { s.LoadMesh(m) })
	mw.state.Emit(app.EventMeshLoaded, m)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Load From Backend", mw.onLoadFromBackend),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Reset 3D View", func() {
			mw.scheduler.Do(func(s *scene.Scene) { s.ResetView() })
		}),
		fyne.NewMenuItem("Zoom In", func() {
			mw.scheduler.Do(func(s *scene.Scene) { s.Camera.ZoomIn() })
		}),
		fyne.NewMenuItem("Zoom Out", func() {
			mw.scheduler.Do(func(s *scene.Scene) { s.Camera.ZoomOut() })
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Toggle Fullscreen", func() {
			mw.SetFullScreen(!mw.FullScreen())
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventVolumeLoaded, func(data interface{}) {
		if v, ok := data.(*volume.Volume); ok && v != nil {
			d, h, w := v.Dims()
			mw.updateStatus(fmt.Sprintf("Volume loaded: %dx%dx%d", d, h, w))
		}
	})

	mw.state.On(app.EventMeshLoaded, func(data interface{}) {
		if m, ok := data.(*mesh.Mesh); ok && m != nil {
			mw.updateStatus(fmt.Sprintf("Surface model loaded: %d faces", m.Stats().Faces))
		}
	})
}

// onLoadFromBackend fetches whatever artifacts the backend already holds,
// without starting a new run. Failed fetches leave displayed state
// untouched.
func (mw *MainWindow) onLoadFromBackend() {
	mw.updateStatus("Loading artifacts from backend...")

	go func() {
		ctx := context.Background()

		buf, err := mw.backend.FetchVolume(ctx)
		if err != nil {
			mw.pipelinePanel.Error(err.Error())
			return
		}
		vol, err := volume.Decode(buf)
		if err != nil {
			mw.pipelinePanel.Error(err.Error())
			return
		}
		mw.state.SetVolume(vol)

		if maskBuf, err := mw.backend.FetchMask(ctx); err != nil {
			mw.pipelinePanel.Warning("segmentation unavailable: " + err.Error())
		} else if m, err := volume.DecodeMask(maskBuf, vol); err != nil {
			mw.pipelinePanel.Warning("segmentation rejected: " + err.Error())
		} else {
			mw.state.SetMask(m)
		}

		meshBuf, err := mw.backend.FetchMesh(ctx)
		if err != nil {
			mw.pipelinePanel.Warning("surface model unavailable: " + err.Error())
			return
		}
		m, err := mesh.DecodeSTL(meshBuf)
		if err != nil {
			mw.pipelinePanel.Error("surface model rejected: " + err.Error())
			return
		}
		mw.loadMesh(m)
	}()
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Volume Viewer",
		fmt.Sprintf("Volume Viewer v%s\n\n"+
			"Multi-planar and 3D surface viewer for the\n"+
			"reconstruction backend.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
