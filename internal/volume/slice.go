package volume

import "fmt"

// ExtractSlice gathers the 2D plane at the given index along the given
// orientation, row-major within the output plane. It returns the plane
// samples and the plane's width and height. Extraction never mutates the
// source volume and is a pure function of its inputs.
func ExtractSlice(v *Volume, o Orientation, index int) ([]float32, int, int, error) {
	if v == nil {
		return nil, 0, 0, fmt.Errorf("no volume loaded")
	}
	if n := SliceCount(v, o); index < 0 || index >= n {
		return nil, 0, 0, fmt.Errorf("slice index %d out of range [0,%d) for %s", index, n, o)
	}

	g := o.geom(v.depth, v.height, v.width)
	plane := make([]float32, g.width*g.height)

	if o == Axial {
		// The axial plane is contiguous in the slab.
		copy(plane, v.samples[index*g.fixedStride:(index+1)*g.fixedStride])
		return plane, g.width, g.height, nil
	}

	base := index * g.fixedStride
	for row := 0; row < g.height; row++ {
		src := base + row*g.rowStride
		dst := row * g.width
		for col := 0; col < g.width; col++ {
			plane[dst+col] = v.samples[src+col*g.colStride]
		}
	}
	return plane, g.width, g.height, nil
}

// ExtractMaskSlice gathers the label plane parallel to ExtractSlice, using
// identical index arithmetic. A nil mask yields a nil plane, which the
// compositor treats as "no overlay".
func ExtractMaskSlice(m *Mask, o Orientation, index int) []uint8 {
	if m == nil {
		return nil
	}
	if n := maskSliceCount(m, o); index < 0 || index >= n {
		return nil
	}

	g := o.geom(m.depth, m.height, m.width)
	plane := make([]uint8, g.width*g.height)

	if o == Axial {
		copy(plane, m.labels[index*g.fixedStride:(index+1)*g.fixedStride])
		return plane
	}

	base := index * g.fixedStride
	for row := 0; row < g.height; row++ {
		src := base + row*g.rowStride
		dst := row * g.width
		for col := 0; col < g.width; col++ {
			plane[dst+col] = m.labels[src+col*g.colStride]
		}
	}
	return plane
}

func maskSliceCount(m *Mask, o Orientation) int {
	switch o {
	case Coronal:
		return m.height
	case Sagittal:
		return m.width
	default:
		return m.depth
	}
}
