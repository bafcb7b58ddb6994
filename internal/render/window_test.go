package render

import "testing"

func TestMapIntensityDefaultWindow(t *testing.T) {
	w := NewWindow(DefaultCenter, DefaultWidth)

	cases := []struct {
		value float64
		want  uint8
	}{
		{-1000, 0},
		{-160, 0}, // lower edge clamps
		{240, 255}, // upper edge clamps
		{3000, 255},
		{40, 128}, // center rounds up from 127.5
	}
	for _, c := range cases {
		if got := MapIntensity(c.value, w); got != c.want {
			t.Errorf("MapIntensity(%v) = %d, want %d", c.value, got, c.want)
		}
	}
}

func TestMapIntensityMonotone(t *testing.T) {
	w := NewWindow(40, 400)
	prev := MapIntensity(-300, w)
	for v := -299.0; v <= 400; v++ {
		cur := MapIntensity(v, w)
		if cur < prev {
			t.Fatalf("mapping decreased at %v: %d -> %d", v, prev, cur)
		}
		prev = cur
	}
}

func TestNewWindowRejectsNonPositiveWidth(t *testing.T) {
	for _, width := range []float64{0, -50} {
		w := NewWindow(120, width)
		if w.Center != DefaultCenter || w.Width != DefaultWidth {
			t.Errorf("NewWindow(120, %v) = %+v, want default window", width, w)
		}
	}
	w := NewWindow(300, 1500)
	if w.Center != 300 || w.Width != 1500 {
		t.Errorf("NewWindow(300, 1500) = %+v", w)
	}
}

func TestPresetsIncludeSoftTissueDefault(t *testing.T) {
	if len(Presets) == 0 {
		t.Fatal("no presets defined")
	}
	first := Presets[0]
	if first.Window.Center != DefaultCenter || first.Window.Width != DefaultWidth {
		t.Errorf("first preset %q = %+v, want the default window", first.Name, first.Window)
	}
}
