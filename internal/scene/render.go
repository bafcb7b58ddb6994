package scene

import (
	"image"
	"math"
	"sort"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/spatial/r3"
)

// nearPlane rejects geometry at or behind the camera.
const nearPlane = 1e-3

var backgroundColor = [3]float64{0.08, 0.08, 0.1}

// projected is one triangle after view transform, ready to draw.
type projected struct {
	sx, sy [3]float64
	depth  float64 // view-space distance used for painter's ordering
	shade  float64 // Lambert term in [0,1]
}

// Render draws the scene into an RGBA frame of the given size. It tolerates
// "no mesh" as a steady state: the background and orientation aid are drawn
// regardless of data availability.
func (s *Scene) Render(width, height int) *image.RGBA {
	if width <= 0 || height <= 0 {
		return nil
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(backgroundColor[0], backgroundColor[1], backgroundColor[2])
	dc.Clear()

	s.drawAxes(dc, width, height)

	if s.surface != nil {
		s.drawSurface(dc, width, height)
	}

	frame, _ := dc.Image().(*image.RGBA)
	return frame
}

// drawSurface runs the fill pass and, when enabled, the wireframe pass.
func (s *Scene) drawSurface(dc *gg.Context, width, height int) {
	tris := s.projectTriangles(width, height)

	// Painter's order: far triangles first.
	sort.Slice(tris, func(i, j int) bool { return tris[i].depth > tris[j].depth })

	mat := s.material
	alpha := 1.0
	if mat.Blended() {
		alpha = mat.Opacity
	}

	for _, t := range tris {
		dc.SetRGBA(
			clamp01(mat.Fill.R*t.shade),
			clamp01(mat.Fill.G*t.shade),
			clamp01(mat.Fill.B*t.shade),
			alpha,
		)
		dc.MoveTo(t.sx[0], t.sy[0])
		dc.LineTo(t.sx[1], t.sy[1])
		dc.LineTo(t.sx[2], t.sy[2])
		dc.ClosePath()
		dc.Fill()
	}

	if s.wireframeVisible {
		dc.SetRGBA(wireframeColor.R, wireframeColor.G, wireframeColor.B, wireframeOpacity)
		dc.SetLineWidth(1)
		for _, t := range tris {
			dc.MoveTo(t.sx[0], t.sy[0])
			dc.LineTo(t.sx[1], t.sy[1])
			dc.LineTo(t.sx[2], t.sy[2])
			dc.ClosePath()
			dc.Stroke()
		}
	}
}

// projectTriangles transforms the surface into screen space and computes the
// per-face Lambert term.
func (s *Scene) projectTriangles(width, height int) []projected {
	right, up, forward := s.Camera.basis()
	focal := float64(height) / 2 / math.Tan(s.Camera.FOV/2)
	cx, cy := float64(width)/2, float64(height)/2

	out := make([]projected, 0, len(s.surface.Triangles))
	for _, tri := range s.surface.Triangles {
		var p projected
		behind := false
		var depth float64
		for i, v := range tri.V {
			d := r3.Sub(v, s.Camera.Eye)
			z := r3.Dot(d, forward)
			if z < nearPlane {
				behind = true
				break
			}
			p.sx[i] = cx + focal*r3.Dot(d, right)/z
			p.sy[i] = cy - focal*r3.Dot(d, up)/z
			depth += z
		}
		if behind {
			continue
		}
		p.depth = depth / 3

		n := tri.Normal
		if r3.Norm(n) == 0 {
			n = faceNormal(tri.V)
		}
		n = r3.Unit(n)

		lambert := r3.Dot(n, r3.Scale(-1, s.Light.Direction))
		if s.material.DoubleSided {
			lambert = math.Abs(lambert)
		} else if lambert < 0 {
			lambert = 0
		}
		p.shade = clamp01(s.Light.Ambient + s.Light.Diffuse*lambert)

		out = append(out, p)
	}
	return out
}

// drawAxes renders the orientation aid: short X/Y/Z strokes anchored at the
// projection of the origin.
func (s *Scene) drawAxes(dc *gg.Context, width, height int) {
	length := 25.0
	if s.sphere.Radius > 0 {
		length = s.sphere.Radius * 0.5
	}

	axes := []struct {
		dir     r3.Vec
		r, g, b float64
	}{
		{r3.Vec{X: length}, 0.85, 0.3, 0.3},
		{r3.Vec{Y: length}, 0.3, 0.85, 0.3},
		{r3.Vec{Z: length}, 0.35, 0.45, 0.9},
	}

	origin, ok := s.projectPoint(r3.Vec{}, width, height)
	if !ok {
		return
	}
	dc.SetLineWidth(1.5)
	for _, a := range axes {
		tip, ok := s.projectPoint(a.dir, width, height)
		if !ok {
			continue
		}
		dc.SetRGBA(a.r, a.g, a.b, 0.9)
		dc.DrawLine(origin[0], origin[1], tip[0], tip[1])
		dc.Stroke()
	}
}

func (s *Scene) projectPoint(v r3.Vec, width, height int) ([2]float64, bool) {
	right, up, forward := s.Camera.basis()
	d := r3.Sub(v, s.Camera.Eye)
	z := r3.Dot(d, forward)
	if z < nearPlane {
		return [2]float64{}, false
	}
	focal := float64(height) / 2 / math.Tan(s.Camera.FOV/2)
	return [2]float64{
		float64(width)/2 + focal*r3.Dot(d, right)/z,
		float64(height)/2 - focal*r3.Dot(d, up)/z,
	}, true
}

func faceNormal(v [3]r3.Vec) r3.Vec {
	n := r3.Cross(r3.Sub(v[1], v[0]), r3.Sub(v[2], v[0]))
	if r3.Norm(n) == 0 {
		return r3.Vec{Z: 1}
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
