package scene

import "github.com/lucasb-eyer/go-colorful"

// Material is the live appearance of the attached surface mesh.
type Material struct {
	Fill        colorful.Color
	Opacity     float64
	DoubleSided bool
}

// Blended reports whether the material requires alpha blending. The
// threshold is exact: opacity 1.0 disables blending, anything below enables
// it.
func (m Material) Blended() bool {
	return m.Opacity < 1.0
}

// DefaultFillColor is the surface color applied to a freshly loaded mesh.
var DefaultFillColor = colorful.Color{R: 0.8, G: 0.63, B: 0.55}

// newSurfaceMaterial builds the material attached to a freshly loaded mesh.
func newSurfaceMaterial(fill colorful.Color) Material {
	return Material{
		Fill:        fill,
		Opacity:     1.0,
		DoubleSided: true,
	}
}

// Wireframe twin appearance: a fixed low-opacity neutral color. The twin has
// no user-adjustable material.
var wireframeColor = colorful.Color{R: 0.75, G: 0.75, B: 0.78}

const wireframeOpacity = 0.25
