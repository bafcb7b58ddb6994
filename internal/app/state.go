// Package app provides application lifecycle management, shared viewing
// state, and events.
package app

import (
	"sync"

	"volview/internal/render"
	"volview/internal/volume"
)

// EventType identifies different application events.
type EventType int

const (
	EventVolumeLoaded EventType = iota
	EventMaskLoaded
	EventOrientationChanged
	EventSliceChanged
	EventWindowChanged
	EventMeshLoaded
	EventPipelineChanged
	EventStatusMessage
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the shared viewing state: the loaded volume and mask, the
// active slicing plane, and the window setting. UI panels subscribe to its
// events. Replacements are wholesale; nothing is mutated in place.
type State struct {
	mu sync.RWMutex

	vol  *volume.Volume
	mask *volume.Mask

	orientation volume.Orientation
	sliceIndex  int
	window      render.Window

	stats    volume.Stats
	hasStats bool

	listeners map[EventType][]EventListener
}

// NewState creates the state hub with the soft-tissue window preset.
func NewState() *State {
	return &State{
		orientation: volume.Axial,
		window:      render.NewWindow(render.DefaultCenter, render.DefaultWidth),
		listeners:   make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Volume returns the loaded volume, or nil.
func (s *State) Volume() *volume.Volume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vol
}

// Mask returns the loaded segmentation mask, or nil.
func (s *State) Mask() *volume.Mask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mask
}

// SetVolume replaces the volume wholesale. The previous mask is dropped
// (it annotated the previous volume), the slice index is re-clamped and
// centered on the new extent, and intensity stats are recomputed.
func (s *State) SetVolume(v *volume.Volume) {
	stats := volume.ComputeStats(v)

	s.mu.Lock()
	s.vol = v
	s.mask = nil
	s.stats = stats
	s.hasStats = v != nil
	s.sliceIndex = volume.SliceCount(v, s.orientation) / 2
	s.mu.Unlock()

	s.Emit(EventVolumeLoaded, v)
}

// SetMask attaches a segmentation mask. A nil mask clears the overlay.
func (s *State) SetMask(m *volume.Mask) {
	s.mu.Lock()
	s.mask = m
	s.mu.Unlock()

	s.Emit(EventMaskLoaded, m)
}

// Orientation returns the active slicing plane.
func (s *State) Orientation() volume.Orientation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orientation
}

// SetOrientation switches the slicing plane and re-clamps the slice index
// against the new extent.
func (s *State) SetOrientation(o volume.Orientation) {
	s.mu.Lock()
	s.orientation = o
	s.sliceIndex = volume.ClampIndex(s.vol, o, s.sliceIndex)
	s.mu.Unlock()

	s.Emit(EventOrientationChanged, o)
}

// SliceIndex returns the bounded slice index for the active orientation.
func (s *State) SliceIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sliceIndex
}

// SetSliceIndex moves the slice cursor, clamped to the current extent.
// Safe to call before any volume has loaded.
func (s *State) SetSliceIndex(index int) {
	s.mu.Lock()
	s.sliceIndex = volume.ClampIndex(s.vol, s.orientation, index)
	index = s.sliceIndex
	s.mu.Unlock()

	s.Emit(EventSliceChanged, index)
}

// SliceCount returns the number of slices along the active orientation.
func (s *State) SliceCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return volume.SliceCount(s.vol, s.orientation)
}

// Window returns the active window setting.
func (s *State) Window() render.Window {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.window
}

// SetWindow replaces the window setting. A non-positive width falls back to
// the soft-tissue default rather than violating the width invariant.
func (s *State) SetWindow(center, width float64) {
	w := render.NewWindow(center, width)

	s.mu.Lock()
	s.window = w
	s.mu.Unlock()

	s.Emit(EventWindowChanged, w)
}

// AutoWindow derives the window from the loaded volume's intensity
// distribution. No-op before a volume has loaded.
func (s *State) AutoWindow() {
	s.mu.RLock()
	stats, ok := s.stats, s.hasStats
	s.mu.RUnlock()
	if !ok {
		return
	}
	s.SetWindow(stats.AutoWindow())
}

// CurrentSlice extracts the active intensity plane plus the parallel label
// plane. It returns nil data before a volume has loaded; callers treat that
// as "nothing to draw".
func (s *State) CurrentSlice() (plane []float32, maskPlane []uint8, w, h int) {
	s.mu.RLock()
	vol, mask := s.vol, s.mask
	o, idx := s.orientation, s.sliceIndex
	s.mu.RUnlock()

	if vol == nil {
		return nil, nil, 0, 0
	}
	plane, w, h, err := volume.ExtractSlice(vol, o, idx)
	if err != nil {
		return nil, nil, 0, 0
	}
	return plane, volume.ExtractMaskSlice(mask, o, idx), w, h
}
