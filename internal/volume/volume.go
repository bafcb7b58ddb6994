// Package volume provides the intensity volume and segmentation mask data
// model and orthogonal slice extraction.
package volume

import "fmt"

// Volume is a 3D scalar intensity field stored as a flat slab in z-major
// order: index = z*(W*H) + y*W + x. A Volume is immutable once constructed;
// a reload replaces it wholesale.
type Volume struct {
	samples []float32

	depth  int
	height int
	width  int
}

// New constructs a Volume from a sample slab and its dimensions.
func New(samples []float32, depth, height, width int) (*Volume, error) {
	if depth <= 0 || height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%dx%d", ErrFormat, depth, height, width)
	}
	if len(samples) != depth*height*width {
		return nil, fmt.Errorf("%w: sample count %d does not match dimensions %dx%dx%d",
			ErrFormat, len(samples), depth, height, width)
	}
	return &Volume{
		samples: samples,
		depth:   depth,
		height:  height,
		width:   width,
	}, nil
}

// Dims returns the volume dimensions as (depth, height, width).
func (v *Volume) Dims() (d, h, w int) {
	return v.depth, v.height, v.width
}

// Len returns the total number of samples.
func (v *Volume) Len() int {
	return len(v.samples)
}

// At returns the intensity sample at (x, y, z). Coordinates must be in range.
func (v *Volume) At(x, y, z int) float32 {
	return v.samples[z*v.width*v.height+y*v.width+x]
}

// Mask is an optional label volume parallel to an intensity Volume, with the
// same dimensions and indexing. A missing mask is a valid state: the backend
// pipeline may succeed partially and serve only the intensity volume.
type Mask struct {
	labels []uint8

	depth  int
	height int
	width  int
}

// NewMask constructs a Mask validated against the volume it annotates.
func NewMask(labels []uint8, vol *Volume) (*Mask, error) {
	if vol == nil {
		return nil, fmt.Errorf("%w: mask loaded before volume", ErrFormat)
	}
	if len(labels) != vol.Len() {
		return nil, fmt.Errorf("%w: mask has %d labels, volume has %d samples",
			ErrFormat, len(labels), vol.Len())
	}
	return &Mask{
		labels: labels,
		depth:  vol.depth,
		height: vol.height,
		width:  vol.width,
	}, nil
}

// At returns the label at (x, y, z).
func (m *Mask) At(x, y, z int) uint8 {
	return m.labels[z*m.width*m.height+y*m.width+x]
}

// Len returns the total number of labels.
func (m *Mask) Len() int {
	return len(m.labels)
}
