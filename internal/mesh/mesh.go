// Package mesh models the triangle-soup surface artifact produced by the
// reconstruction backend and decodes it from STL.
package mesh

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrFormat reports a mesh artifact that cannot be parsed. The currently
// attached mesh, if any, stays in place when it is returned.
var ErrFormat = errors.New("mesh: bad format")

// Triangle is one face of a surface: three vertices and the facet normal as
// carried by the artifact (zero when the producer omitted it).
type Triangle struct {
	V      [3]r3.Vec
	Normal r3.Vec
}

// Mesh is an ordered triangle soup.
type Mesh struct {
	Triangles []Triangle
}

// Stats are the derived read-only counts displayed alongside the model.
type Stats struct {
	Vertices int
	Faces    int
}

// Stats returns the triangle and vertex counts.
func (m *Mesh) Stats() Stats {
	if m == nil {
		return Stats{}
	}
	return Stats{Vertices: 3 * len(m.Triangles), Faces: len(m.Triangles)}
}

// Bounds returns the axis-aligned bounding box corners. A mesh with no
// triangles yields zero bounds.
func (m *Mesh) Bounds() (min, max r3.Vec) {
	if m == nil || len(m.Triangles) == 0 {
		return r3.Vec{}, r3.Vec{}
	}
	min = m.Triangles[0].V[0]
	max = min
	for _, t := range m.Triangles {
		for _, v := range t.V {
			min.X = math.Min(min.X, v.X)
			min.Y = math.Min(min.Y, v.Y)
			min.Z = math.Min(min.Z, v.Z)
			max.X = math.Max(max.X, v.X)
			max.Y = math.Max(max.Y, v.Y)
			max.Z = math.Max(max.Z, v.Z)
		}
	}
	return min, max
}

// Centroid returns the center of the bounding box.
func (m *Mesh) Centroid() r3.Vec {
	min, max := m.Bounds()
	return r3.Scale(0.5, r3.Add(min, max))
}

// Sphere is a bounding sphere: the smallest sphere centered on the bounding
// box center that contains every vertex.
type Sphere struct {
	Center r3.Vec
	Radius float64
}

// BoundingSphere computes the mesh's bounding sphere. The center is the
// bounding box center; the radius is the greatest center-to-vertex distance.
func (m *Mesh) BoundingSphere() Sphere {
	if m == nil || len(m.Triangles) == 0 {
		return Sphere{}
	}
	c := m.Centroid()
	var r float64
	for _, t := range m.Triangles {
		for _, v := range t.V {
			if d := r3.Norm(r3.Sub(v, c)); d > r {
				r = d
			}
		}
	}
	return Sphere{Center: c, Radius: r}
}

// Translate shifts every vertex by delta, in place. It is applied exactly
// once, when a freshly decoded mesh is recentered on the origin before it is
// attached to the scene.
func (m *Mesh) Translate(delta r3.Vec) {
	for i := range m.Triangles {
		for j := range m.Triangles[i].V {
			m.Triangles[i].V[j] = r3.Add(m.Triangles[i].V[j], delta)
		}
	}
}
