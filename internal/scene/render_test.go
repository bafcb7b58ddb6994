package scene

import "testing"

func TestRenderWithoutMesh(t *testing.T) {
	s := New(DefaultFillColor)
	frame := s.Render(320, 240)
	if frame == nil {
		t.Fatal("empty scene must still render a frame")
	}
	if b := frame.Bounds(); b.Dx() != 320 || b.Dy() != 240 {
		t.Errorf("frame = %dx%d, want 320x240", b.Dx(), b.Dy())
	}
}

func TestRenderDegenerateSize(t *testing.T) {
	s := New(DefaultFillColor)
	if frame := s.Render(0, 100); frame != nil {
		t.Error("zero-width render should yield nil")
	}
	if frame := s.Render(100, -1); frame != nil {
		t.Error("negative-height render should yield nil")
	}
}

func TestRenderWithMeshDrawsGeometry(t *testing.T) {
	s := New(DefaultFillColor)
	s.LoadMesh(testMesh())

	frame := s.Render(200, 200)
	if frame == nil {
		t.Fatal("expected a frame")
	}

	// The default camera frames the recentered mesh; at least one pixel must
	// differ from the background-only render of an empty scene.
	empty := New(DefaultFillColor).Render(200, 200)
	same := true
	for i := range frame.Pix {
		if frame.Pix[i] != empty.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("mesh render is pixel-identical to the empty scene")
	}
}
