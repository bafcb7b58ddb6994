// Package render maps raw intensity planes to display rasters: window/level
// intensity mapping, segmentation overlay compositing, and aspect-preserving
// presentation onto a target surface.
package render

import "math"

// Default soft-tissue window preset.
const (
	DefaultCenter = 40
	DefaultWidth  = 400
)

// Window is a (center, width) intensity range mapped linearly onto the full
// display range. Width is always > 0.
type Window struct {
	Center float64
	Width  float64
}

// Preset is a named window setting.
type Preset struct {
	Name   string
	Window Window
}

// Presets lists the built-in window settings. Soft tissue is the default;
// bone and lung are its standard companions.
var Presets = []Preset{
	{Name: "Soft tissue", Window: Window{Center: DefaultCenter, Width: DefaultWidth}},
	{Name: "Bone", Window: Window{Center: 300, Width: 1500}},
	{Name: "Lung", Window: Window{Center: -600, Width: 1500}},
}

// NewWindow builds a window setting, falling back to the soft-tissue default
// when the requested width is not positive.
func NewWindow(center, width float64) Window {
	if width <= 0 {
		return Window{Center: DefaultCenter, Width: DefaultWidth}
	}
	return Window{Center: center, Width: width}
}

// MapIntensity maps a raw sample onto [0,255] under the window. Values at or
// below center-width/2 clamp to 0, values at or above center+width/2 clamp
// to 255, and the interior maps linearly with round-to-nearest. The mapping
// is monotonically non-decreasing in value for a fixed window.
func MapIntensity(value float64, w Window) uint8 {
	low := w.Center - w.Width/2
	high := w.Center + w.Width/2
	if value <= low {
		return 0
	}
	if value >= high {
		return 255
	}
	return uint8(math.Round((value - low) / (high - low) * 255))
}
