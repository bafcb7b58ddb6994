package scene

import (
	"image"
	"time"

	"github.com/sirupsen/logrus"
)

// Command is a scene mutation executed on the scheduler goroutine.
type Command func(*Scene)

// Scheduler owns exclusive mutation rights over a Scene. It redraws at a
// fixed rate regardless of whether a mesh is loaded; every mutation —
// completed mesh transfers included — enters through the command queue
// rather than touching the scene from another goroutine.
type Scheduler struct {
	scene   *Scene
	log     *logrus.Logger
	onFrame func(*image.RGBA)

	interval time.Duration
	cmds     chan Command
	resize   chan [2]int
	stop     chan struct{}
	done     chan struct{}
}

// NewScheduler wires a scheduler around a scene. onFrame receives every
// rendered frame; it runs on the scheduler goroutine and must hand off to
// the UI thread itself.
func NewScheduler(s *Scene, fps int, log *logrus.Logger, onFrame func(*image.RGBA)) *Scheduler {
	if fps <= 0 {
		fps = 30
	}
	return &Scheduler{
		scene:    s,
		log:      log,
		onFrame:  onFrame,
		interval: time.Second / time.Duration(fps),
		cmds:     make(chan Command, 16),
		resize:   make(chan [2]int, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// SetOnFrame replaces the frame callback. Call before Start; the loop reads
// the field without locking.
func (sc *Scheduler) SetOnFrame(onFrame func(*image.RGBA)) {
	sc.onFrame = onFrame
}

// Start launches the redraw loop.
func (sc *Scheduler) Start() {
	go sc.run()
}

// Stop shuts the loop down and waits for it to exit.
func (sc *Scheduler) Stop() {
	close(sc.stop)
	<-sc.done
}

// Do queues a scene mutation. The calling goroutine may block briefly when
// the queue is full; the redraw loop itself never blocks on callers.
func (sc *Scheduler) Do(cmd Command) {
	select {
	case sc.cmds <- cmd:
	case <-sc.stop:
	}
}

// Resize updates the frame size rendered by the loop. Only the most recent
// size is kept.
func (sc *Scheduler) Resize(width, height int) {
	for {
		select {
		case sc.resize <- [2]int{width, height}:
			return
		case <-sc.resize:
			// Drop the stale pending size.
		case <-sc.stop:
			return
		}
	}
}

func (sc *Scheduler) run() {
	defer close(sc.done)

	width, height := 640, 480
	ticker := time.NewTicker(sc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-sc.stop:
			return
		case dims := <-sc.resize:
			width, height = dims[0], dims[1]
		case cmd := <-sc.cmds:
			sc.apply(cmd)
		case <-ticker.C:
			sc.frame(width, height)
		}
	}
}

// apply runs one command, isolating the loop from panics so that no data
// error can terminate the render scheduler.
func (sc *Scheduler) apply(cmd Command) {
	defer func() {
		if r := recover(); r != nil {
			sc.log.WithField("panic", r).Error("scene command panicked")
		}
	}()
	cmd(sc.scene)
}

func (sc *Scheduler) frame(width, height int) {
	defer func() {
		if r := recover(); r != nil {
			sc.log.WithField("panic", r).Error("scene render panicked")
		}
	}()
	if frame := sc.scene.Render(width, height); frame != nil && sc.onFrame != nil {
		sc.onFrame(frame)
	}
}
