// Package scene owns the persistent 3D viewing state: camera, lights,
// materials, the attached surface mesh and its wireframe twin, and the
// scheduler that redraws it every refresh tick.
package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"volview/internal/mesh"
)

// Camera zoom factors. The pair is deliberately not an exact inverse:
// zoom in followed by zoom out lands at 0.99 of the starting distance.
const (
	zoomInFactor  = 0.9
	zoomOutFactor = 1.1
)

// resetDistanceFactor places the observer at 2.5 bounding-sphere radii.
const resetDistanceFactor = 2.5

// Camera is the observer: eye position, aim target, and up vector.
type Camera struct {
	Eye    r3.Vec
	Target r3.Vec
	Up     r3.Vec

	// FOV is the vertical field of view in radians.
	FOV float64
}

// NewCamera returns a camera aimed at the origin from a default standoff.
func NewCamera() Camera {
	return Camera{
		Eye:    r3.Vec{X: 100, Y: 100, Z: 100},
		Target: r3.Vec{},
		Up:     r3.Vec{Y: 1},
		FOV:    50 * math.Pi / 180,
	}
}

// Reset frames the bounding sphere: the eye lands on the (1,1,1) diagonal
// from the sphere center at a distance of exactly 2.5 radii, aimed at the
// center. Deterministic, no interpolation, independent of prior camera state.
func (c *Camera) Reset(s mesh.Sphere) {
	if s.Radius <= 0 {
		return
	}
	diag := r3.Unit(r3.Vec{X: 1, Y: 1, Z: 1})
	c.Eye = r3.Add(s.Center, r3.Scale(resetDistanceFactor*s.Radius, diag))
	c.Target = s.Center
}

// ZoomIn scales the eye position toward the origin. Unconditional: there is
// no minimum distance clamp.
func (c *Camera) ZoomIn() {
	c.Eye = r3.Scale(zoomInFactor, c.Eye)
}

// ZoomOut scales the eye position away from the origin. Unconditional: there
// is no maximum distance clamp.
func (c *Camera) ZoomOut() {
	c.Eye = r3.Scale(zoomOutFactor, c.Eye)
}

// basis returns the camera's orthonormal view basis: right, up, forward.
func (c Camera) basis() (right, up, forward r3.Vec) {
	forward = r3.Unit(r3.Sub(c.Target, c.Eye))
	right = r3.Unit(r3.Cross(forward, c.Up))
	up = r3.Cross(right, forward)
	return right, up, forward
}
