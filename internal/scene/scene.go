package scene

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"volview/internal/mesh"
)

// Light is the fixed scene illumination: an ambient term plus one
// directional source.
type Light struct {
	Ambient   float64
	Diffuse   float64
	Direction r3.Vec // direction the light travels, unit length
}

// Scene holds the persistent viewing state. It is NOT safe for concurrent
// use; all mutation goes through the Scheduler, which owns it exclusively.
type Scene struct {
	Camera Camera
	Light  Light

	surface  *mesh.Mesh
	sphere   mesh.Sphere
	material Material

	// The wireframe twin shares the surface geometry; only its visibility
	// persists across mesh reloads.
	wireframeVisible bool
}

// New returns an empty scene: camera at the default standoff, lights on,
// no mesh attached. The scene tolerates this as a steady state. fill is the
// surface color applied to loaded meshes until the operator changes it.
func New(fill colorful.Color) *Scene {
	return &Scene{
		Camera: NewCamera(),
		Light: Light{
			Ambient:   0.35,
			Diffuse:   0.65,
			Direction: r3.Unit(r3.Vec{X: -1, Y: -1, Z: -1}),
		},
		material: newSurfaceMaterial(fill),
	}
}

// HasMesh reports whether a surface is attached.
func (s *Scene) HasMesh() bool {
	return s.surface != nil
}

// Stats returns the attached mesh's derived counts.
func (s *Scene) Stats() mesh.Stats {
	return s.surface.Stats()
}

// LoadMesh replaces the displayed model. The previous mesh and its wireframe
// twin are fully detached before the new geometry is attached: the surface
// reference is dropped, the geometry is recentered so its bounding-box
// centroid sits at the origin, a fresh surface material is constructed (the
// wireframe twin keeps only its visibility flag), and the view is reset.
func (s *Scene) LoadMesh(m *mesh.Mesh) {
	s.surface = nil
	s.sphere = mesh.Sphere{}
	if m == nil {
		return
	}

	m.Translate(r3.Scale(-1, m.Centroid()))

	s.surface = m
	s.sphere = m.BoundingSphere()
	s.material = newSurfaceMaterial(s.material.Fill)
	s.ResetView()
}

// ResetView reframes the camera on the attached mesh's bounding sphere.
// No-op when no mesh is loaded.
func (s *Scene) ResetView() {
	if s.surface == nil {
		return
	}
	s.Camera.Reset(s.sphere)
}

// SetColor mutates the live surface material. No-op with nothing attached.
func (s *Scene) SetColor(c colorful.Color) {
	if s.surface == nil {
		return
	}
	s.material.Fill = c
}

// SetOpacity mutates the live surface material. Values are clamped to
// [0, 1]; exactly 1.0 disables blending. No-op with nothing attached.
func (s *Scene) SetOpacity(o float64) {
	if s.surface == nil {
		return
	}
	if o < 0 {
		o = 0
	}
	if o > 1 {
		o = 1
	}
	s.material.Opacity = o
}

// SetWireframeVisible toggles the wireframe twin. The flag survives mesh
// reloads. No-op with nothing attached.
func (s *Scene) SetWireframeVisible(visible bool) {
	if s.surface == nil {
		return
	}
	s.wireframeVisible = visible
}

// WireframeVisible reports the twin's visibility.
func (s *Scene) WireframeVisible() bool {
	return s.wireframeVisible
}

// Material returns the live surface material.
func (s *Scene) Material() Material {
	return s.material
}
