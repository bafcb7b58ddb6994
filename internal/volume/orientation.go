package volume

// Orientation selects which axis is held fixed during slice extraction.
type Orientation int

const (
	// Axial fixes the depth axis (z); the plane is the native acquisition plane.
	Axial Orientation = iota
	// Coronal fixes the height axis (y).
	Coronal
	// Sagittal fixes the width axis (x).
	Sagittal
)

func (o Orientation) String() string {
	switch o {
	case Axial:
		return "Axial"
	case Coronal:
		return "Coronal"
	case Sagittal:
		return "Sagittal"
	default:
		return "Unknown"
	}
}

// Orientations lists the selectable slicing planes in display order.
var Orientations = []Orientation{Axial, Coronal, Sagittal}

// planeGeom describes, for one orientation, how a 2D output plane maps onto
// the flat volume slab: the stride applied per fixed-axis index, and the
// strides walked per output row and column. One gather routine consumes
// these descriptors instead of three hand-written index loops.
type planeGeom struct {
	width  int // output plane width
	height int // output plane height

	fixedStride int // slab offset per slice index
	rowStride   int // slab offset per output row
	colStride   int // slab offset per output column
}

// geom returns the plane descriptor for o over a volume of dims (d, h, w).
func (o Orientation) geom(d, h, w int) planeGeom {
	switch o {
	case Coronal:
		// Fixed y: element (z, x) = slab[z*w*h + i*w + x].
		return planeGeom{width: w, height: d, fixedStride: w, rowStride: w * h, colStride: 1}
	case Sagittal:
		// Fixed x: element (z, y) = slab[z*w*h + y*w + i].
		return planeGeom{width: h, height: d, fixedStride: 1, rowStride: w * h, colStride: w}
	default:
		// Fixed z: a contiguous w*h block starting at i*w*h.
		return planeGeom{width: w, height: h, fixedStride: w * h, rowStride: w, colStride: 1}
	}
}

// SliceCount returns the number of slices available along o.
func SliceCount(v *Volume, o Orientation) int {
	if v == nil {
		return 0
	}
	switch o {
	case Coronal:
		return v.height
	case Sagittal:
		return v.width
	default:
		return v.depth
	}
}

// ClampIndex bounds a slice index to [0, SliceCount-1] for the given
// orientation. It is applied whenever the orientation or the volume changes.
func ClampIndex(v *Volume, o Orientation, index int) int {
	n := SliceCount(v, o)
	if n == 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
