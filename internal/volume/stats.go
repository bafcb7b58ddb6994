package volume

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the intensity distribution of a volume. P1/P99 bracket
// the central 98% of samples and drive the auto-window control.
type Stats struct {
	Min float64
	Max float64
	P1  float64
	P99 float64
}

// ComputeStats scans the volume once and derives its intensity statistics.
func ComputeStats(v *Volume) Stats {
	if v == nil || len(v.samples) == 0 {
		return Stats{}
	}

	sorted := make([]float64, len(v.samples))
	for i, s := range v.samples {
		sorted[i] = float64(s)
	}
	sort.Float64s(sorted)

	return Stats{
		Min: sorted[0],
		Max: sorted[len(sorted)-1],
		P1:  stat.Quantile(0.01, stat.Empirical, sorted, nil),
		P99: stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
}

// AutoWindow derives a window (center, width) from the central 98% of the
// intensity distribution. The width is floored at 1 so the window invariant
// holds even for constant volumes.
func (s Stats) AutoWindow() (center, width float64) {
	width = s.P99 - s.P1
	if width < 1 {
		width = 1
	}
	center = (s.P99 + s.P1) / 2
	return center, width
}
