package scene

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"volview/internal/mesh"
)

func testMesh() *mesh.Mesh {
	// A single triangle offset well away from the origin.
	return &mesh.Mesh{Triangles: []mesh.Triangle{
		{V: [3]r3.Vec{
			{X: 10, Y: 10, Z: 10},
			{X: 14, Y: 10, Z: 10},
			{X: 10, Y: 14, Z: 10},
		}},
	}}
}

func TestNewSceneSteadyStateWithoutMesh(t *testing.T) {
	s := New(DefaultFillColor)

	if s.HasMesh() {
		t.Error("fresh scene should have no mesh")
	}
	if st := s.Stats(); st != (mesh.Stats{}) {
		t.Errorf("stats without mesh = %+v", st)
	}

	// Mutations before a mesh is attached are no-ops, not panics.
	before := s.Camera
	s.ResetView()
	s.SetOpacity(0.5)
	s.SetWireframeVisible(true)
	if s.Camera != before {
		t.Error("ResetView moved the camera with no mesh attached")
	}
	if s.Material().Opacity != 1.0 {
		t.Error("SetOpacity took effect with no mesh attached")
	}
	if s.WireframeVisible() {
		t.Error("wireframe toggled with no mesh attached")
	}
}

func TestLoadMeshRecentersAndFrames(t *testing.T) {
	s := New(DefaultFillColor)
	m := testMesh()

	s.LoadMesh(m)

	if !s.HasMesh() {
		t.Fatal("mesh not attached")
	}
	if c := m.Centroid(); r3.Norm(c) > 1e-9 {
		t.Errorf("mesh centroid after load = %v, want origin", c)
	}

	sphere := m.BoundingSphere()
	dist := r3.Norm(r3.Sub(s.Camera.Eye, sphere.Center))
	if math.Abs(dist-2.5*sphere.Radius) > 1e-9 {
		t.Errorf("camera distance = %v, want %v", dist, 2.5*sphere.Radius)
	}
	if st := s.Stats(); st.Faces != 1 || st.Vertices != 3 {
		t.Errorf("stats = %+v", st)
	}
}

func TestLoadMeshResetsMaterialKeepsFill(t *testing.T) {
	s := New(DefaultFillColor)
	s.LoadMesh(testMesh())

	custom := colorful.Color{R: 1, G: 0.1, B: 0.1}
	s.SetColor(custom)
	s.SetOpacity(0.4)

	s.LoadMesh(testMesh())

	mat := s.Material()
	if mat.Fill != custom {
		t.Errorf("fill after reload = %v, want kept color %v", mat.Fill, custom)
	}
	if mat.Opacity != 1.0 {
		t.Errorf("opacity after reload = %v, want fresh 1.0", mat.Opacity)
	}
}

func TestWireframeVisibilitySurvivesReload(t *testing.T) {
	s := New(DefaultFillColor)
	s.LoadMesh(testMesh())
	s.SetWireframeVisible(true)

	s.LoadMesh(testMesh())
	if !s.WireframeVisible() {
		t.Error("wireframe visibility lost across mesh reload")
	}
}

func TestLoadMeshNilDetaches(t *testing.T) {
	s := New(DefaultFillColor)
	s.LoadMesh(testMesh())
	s.LoadMesh(nil)
	if s.HasMesh() {
		t.Error("nil load should detach the surface")
	}
}

func TestSetOpacityClampsAndBlends(t *testing.T) {
	s := New(DefaultFillColor)
	s.LoadMesh(testMesh())

	s.SetOpacity(1.7)
	if got := s.Material().Opacity; got != 1.0 {
		t.Errorf("opacity = %v, want clamp to 1", got)
	}
	if s.Material().Blended() {
		t.Error("opacity 1.0 must not blend")
	}

	s.SetOpacity(-0.3)
	if got := s.Material().Opacity; got != 0 {
		t.Errorf("opacity = %v, want clamp to 0", got)
	}

	s.SetOpacity(0.999)
	if !s.Material().Blended() {
		t.Error("opacity below 1.0 must blend")
	}
}
