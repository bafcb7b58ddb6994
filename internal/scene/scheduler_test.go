package scene

import (
	"image"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSchedulerRendersFrames(t *testing.T) {
	var frames atomic.Int32
	got := make(chan *image.RGBA, 1)

	sc := NewScheduler(New(DefaultFillColor), 100, testLogger(), func(f *image.RGBA) {
		if frames.Add(1) == 1 {
			got <- f
		}
	})
	sc.Start()
	defer sc.Stop()

	select {
	case f := <-got:
		if b := f.Bounds(); b.Dx() != 640 || b.Dy() != 480 {
			t.Errorf("default frame = %dx%d, want 640x480", b.Dx(), b.Dy())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no frame rendered")
	}
}

func TestSchedulerResize(t *testing.T) {
	sized := make(chan [2]int, 16)
	sc := NewScheduler(New(DefaultFillColor), 100, testLogger(), func(f *image.RGBA) {
		select {
		case sized <- [2]int{f.Bounds().Dx(), f.Bounds().Dy()}:
		default:
		}
	})
	sc.Start()
	defer sc.Stop()

	sc.Resize(200, 150)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case dims := <-sized:
			if dims == [2]int{200, 150} {
				return
			}
		case <-deadline:
			t.Fatal("resize never took effect")
		}
	}
}

func TestSchedulerCommandsRunOnLoop(t *testing.T) {
	s := New(DefaultFillColor)
	sc := NewScheduler(s, 100, testLogger(), nil)
	sc.Start()
	defer sc.Stop()

	applied := make(chan bool, 1)
	sc.Do(func(sc *Scene) {
		sc.LoadMesh(testMesh())
		applied <- sc.HasMesh()
	})

	select {
	case ok := <-applied:
		if !ok {
			t.Error("command ran but the mesh was not attached")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("command never applied")
	}
}

func TestSchedulerSurvivesPanickingCommand(t *testing.T) {
	sc := NewScheduler(New(DefaultFillColor), 100, testLogger(), nil)
	sc.Start()
	defer sc.Stop()

	sc.Do(func(*Scene) { panic("bad data") })

	alive := make(chan struct{}, 1)
	sc.Do(func(*Scene) { alive <- struct{}{} })

	select {
	case <-alive:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler loop died after a panicking command")
	}
}

func TestSchedulerStopTerminatesLoop(t *testing.T) {
	sc := NewScheduler(New(DefaultFillColor), 100, testLogger(), nil)
	sc.Start()

	done := make(chan struct{})
	go func() {
		sc.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
