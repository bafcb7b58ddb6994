package volume

import "testing"

func TestComputeStatsBounds(t *testing.T) {
	samples := make([]float32, 1000)
	for i := range samples {
		samples[i] = float32(i) - 500
	}
	v, err := New(samples, 10, 10, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s := ComputeStats(v)
	if s.Min != -500 || s.Max != 499 {
		t.Errorf("min/max = %v/%v, want -500/499", s.Min, s.Max)
	}
	if s.P1 < s.Min || s.P1 > s.P99 || s.P99 > s.Max {
		t.Errorf("quantiles out of order: min=%v p1=%v p99=%v max=%v", s.Min, s.P1, s.P99, s.Max)
	}
	// P1 and P99 should bracket the bulk of a uniform ramp, not hug the ends.
	if s.P1 > -450 || s.P99 < 450 {
		t.Errorf("quantiles too tight: p1=%v p99=%v", s.P1, s.P99)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	s := ComputeStats(nil)
	if s != (Stats{}) {
		t.Errorf("nil volume stats = %+v, want zero value", s)
	}
}

func TestAutoWindow(t *testing.T) {
	s := Stats{P1: -100, P99: 300}
	c, w := s.AutoWindow()
	if c != 100 || w != 400 {
		t.Errorf("AutoWindow = (%v, %v), want (100, 400)", c, w)
	}
}

func TestAutoWindowConstantVolume(t *testing.T) {
	samples := make([]float32, 8)
	for i := range samples {
		samples[i] = 5
	}
	v, err := New(samples, 2, 2, 2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c, w := ComputeStats(v).AutoWindow()
	if w < 1 {
		t.Errorf("width = %v, must stay at least 1", w)
	}
	if c != 5 {
		t.Errorf("center = %v, want 5", c)
	}
}
