package panels

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"volview/internal/client"
	"volview/internal/pipeline"
)

// PipelinePanel drives a processing run: choose the series directory, start
// the run, watch stage/progress, and read the leveled status log. The panel
// is the UI's StatusSink.
type PipelinePanel struct {
	controller *pipeline.Controller
	window     fyne.Window

	seriesDir  string
	dirLabel   *widget.Label
	runBtn     *widget.Button
	stageLabel *widget.Label
	progress   *widget.ProgressBar
	statusLog  *widget.Label

	container *fyne.Container
}

// NewPipelinePanel builds the panel.
func NewPipelinePanel(controller *pipeline.Controller, window fyne.Window) *PipelinePanel {
	p := &PipelinePanel{
		controller: controller,
		window:     window,
	}

	p.dirLabel = widget.NewLabel("no series selected")
	p.dirLabel.Wrapping = fyne.TextTruncate

	chooseBtn := widget.NewButton("Choose series...", p.onChooseSeries)
	p.runBtn = widget.NewButton("Run processing", p.onRun)

	p.stageLabel = widget.NewLabel(pipeline.Idle.String())
	p.progress = widget.NewProgressBar()
	p.statusLog = widget.NewLabel("")
	p.statusLog.Wrapping = fyne.TextWrapWord

	p.container = container.NewVBox(
		widget.NewLabelWithStyle("Pipeline", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		p.dirLabel,
		container.NewHBox(chooseBtn, p.runBtn),
		p.stageLabel,
		p.progress,
		p.statusLog,
	)

	return p
}

// Container returns the panel's root object.
func (p *PipelinePanel) Container() fyne.CanvasObject {
	return p.container
}

// SetController attaches the run controller. The panel is built before the
// controller because the controller's status sink is the panel itself.
func (p *PipelinePanel) SetController(c *pipeline.Controller) {
	p.controller = c
}

// SetSnapshot reflects a controller transition in the panel.
func (p *PipelinePanel) SetSnapshot(s pipeline.Snapshot) {
	p.stageLabel.SetText(fmt.Sprintf("%s — %s", s.Stage, s.Message))
	p.progress.SetValue(float64(s.Progress) / 100)
}

// StatusSink implementation: leveled operator messages.

func (p *PipelinePanel) Info(msg string)    { p.appendStatus("· " + msg) }
func (p *PipelinePanel) Success(msg string) { p.appendStatus("✓ " + msg) }
func (p *PipelinePanel) Warning(msg string) { p.appendStatus("! " + msg) }
func (p *PipelinePanel) Error(msg string)   { p.appendStatus("✗ " + msg) }

func (p *PipelinePanel) appendStatus(line string) {
	text := p.statusLog.Text
	if text != "" {
		text += "\n"
	}
	p.statusLog.SetText(text + line)
}

func (p *PipelinePanel) onChooseSeries() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		p.seriesDir = uri.Path()
		p.dirLabel.SetText(p.seriesDir)
	}, p.window)
	fd.Show()
}

func (p *PipelinePanel) onRun() {
	if p.controller == nil {
		return
	}
	files, err := readSeriesDir(p.seriesDir)
	if err != nil {
		dialog.ShowError(err, p.window)
		return
	}

	if err := p.controller.Start(context.Background(), files); err != nil {
		// Single-flight rejection: surface it without disturbing the run.
		p.Warning(err.Error())
	}
}

// readSeriesDir gathers every regular file in the chosen directory as an
// upload candidate. The backend sorts out which entries are usable slices.
func readSeriesDir(dir string) ([]client.File, error) {
	if dir == "" {
		return nil, fmt.Errorf("choose a series directory first")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading series directory: %w", err)
	}

	var files []client.File
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		files = append(files, client.File{Name: e.Name(), Data: data})
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files in %s", dir)
	}
	return files, nil
}
