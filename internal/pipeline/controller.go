package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"volview/internal/client"
	"volview/internal/mesh"
	"volview/internal/volume"
)

// ErrRunActive rejects a start request while a run is in flight. Concurrent
// starts are rejected, never queued.
var ErrRunActive = errors.New("pipeline: a processing run is already active")

// Backend is the slice of the API client the controller drives.
type Backend interface {
	Upload(ctx context.Context, files []client.File) (*client.Reply, error)
	StartProcessing(ctx context.Context) (*client.Reply, error)
	FetchVolume(ctx context.Context) ([]byte, error)
	FetchMask(ctx context.Context) ([]byte, error)
	FetchMesh(ctx context.Context) ([]byte, error)
}

// Callbacks deliver decoded artifacts when a run reaches its reload points.
// They run on the controller's run goroutine; receivers hand off to their
// own schedulers (the scene scheduler, the Fyne main loop).
type Callbacks struct {
	OnVolume func(*volume.Volume)
	OnMask   func(*volume.Mask)
	OnMesh   func(*mesh.Mesh)

	// OnChange observes every stage/progress transition.
	OnChange func(Snapshot)
}

// Snapshot is the controller state handed to observers.
type Snapshot struct {
	Stage    Stage
	Progress int
	Message  string
}

// Controller is the single-flight run sequencer. One instance exists per
// process, constructed at startup and passed to whatever drives user input.
//
// Stage and progress advance only on real transport completions. The backend
// reports nothing until its processing call returns, so the middle stages
// close as the artifact that proves each one is fetched: the intensity
// volume closes Preprocessing, the label volume closes Segmenting, the mesh
// closes Reconstructing.
type Controller struct {
	backend Backend
	sink    StatusSink
	log     *logrus.Logger
	cb      Callbacks

	mu       sync.Mutex
	stage    Stage
	progress int
	message  string
}

// New builds an idle controller.
func New(backend Backend, sink StatusSink, log *logrus.Logger, cb Callbacks) *Controller {
	return &Controller{
		backend: backend,
		sink:    sink,
		log:     log,
		cb:      cb,
		stage:   Idle,
	}
}

// Snapshot returns the current stage, progress, and status message.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Stage: c.stage, Progress: c.progress, Message: c.message}
}

// Start begins a processing run over the given series files. It is rejected
// with ErrRunActive while a run is in flight; after Complete or Failed a new
// start resets progress to zero and stage to Uploading. The run itself
// executes on its own goroutine; Start returns immediately.
func (c *Controller) Start(ctx context.Context, files []client.File) error {
	c.mu.Lock()
	if c.stage.Active() {
		c.mu.Unlock()
		return ErrRunActive
	}
	c.stage = Uploading
	c.progress = 0
	c.message = "Uploading image series"
	c.mu.Unlock()

	c.notify()
	c.sink.Info("Uploading image series")

	go c.run(ctx, files)
	return nil
}

func (c *Controller) run(ctx context.Context, files []client.File) {
	reply, err := c.backend.Upload(ctx, files)
	if err != nil {
		c.fail(err)
		return
	}
	c.advance(Preprocessing, 20, reply.Message)
	c.sink.Info("Series uploaded, processing started")

	if _, err := c.backend.StartProcessing(ctx); err != nil {
		c.fail(err)
		return
	}
	c.advance(Preprocessing, 50, "Backend run finished, fetching volume")

	volBuf, err := c.backend.FetchVolume(ctx)
	if err != nil {
		c.fail(err)
		return
	}
	vol, err := volume.Decode(volBuf)
	if err != nil {
		c.fail(err)
		return
	}
	if c.cb.OnVolume != nil {
		c.cb.OnVolume(vol)
	}
	d, h, w := vol.Dims()
	c.advance(Segmenting, 65, fmt.Sprintf("Volume loaded (%dx%dx%d)", d, h, w))

	// The label volume is best effort: a run that produced no segmentation
	// still succeeds, the overlay simply stays absent.
	if maskBuf, err := c.backend.FetchMask(ctx); err != nil {
		c.sink.Warning(fmt.Sprintf("Segmentation unavailable: %v", err))
	} else if m, err := volume.DecodeMask(maskBuf, vol); err != nil {
		c.sink.Warning(fmt.Sprintf("Segmentation rejected: %v", err))
	} else {
		if c.cb.OnMask != nil {
			c.cb.OnMask(m)
		}
		c.sink.Info("Segmentation overlay loaded")
	}
	c.advance(Reconstructing, 80, "Fetching surface model")

	meshBuf, err := c.backend.FetchMesh(ctx)
	if err != nil {
		c.fail(err)
		return
	}
	m, err := mesh.DecodeSTL(meshBuf)
	if err != nil {
		c.fail(fmt.Errorf("surface model: %w", err))
		return
	}
	c.advance(Finalizing, 90, "Loading surface model")
	if c.cb.OnMesh != nil {
		c.cb.OnMesh(m)
	}

	c.advance(Complete, 100, "Processing complete")
	c.sink.Success("Processing complete")
}

// advance moves the run forward. Progress never decreases while active.
func (c *Controller) advance(stage Stage, progress int, message string) {
	c.mu.Lock()
	c.stage = stage
	if progress > c.progress {
		c.progress = progress
	}
	if message != "" {
		c.message = message
	}
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"stage":    stage.String(),
		"progress": progress,
	}).Info("pipeline transition")
	c.notify()
}

// fail freezes progress, records the error, and leaves the controller able
// to accept a new start request.
func (c *Controller) fail(err error) {
	c.mu.Lock()
	c.stage = Failed
	c.message = err.Error()
	c.mu.Unlock()

	c.log.WithError(err).Error("pipeline run failed")
	c.sink.Error(err.Error())
	c.notify()
}

func (c *Controller) notify() {
	if c.cb.OnChange != nil {
		c.cb.OnChange(c.Snapshot())
	}
}
